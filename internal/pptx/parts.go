package pptx

import (
	"bytes"
	"encoding/xml"
	"text/template"
)

const namespaces = `xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" ` +
	`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"`

const (
	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relSlideMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relSlideLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relSlide          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTheme          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relPresProps      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/presProps"
	relViewProps      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/viewProps"
	relTableStyles    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/tableStyles"
	relHyperlink      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
)

// relationship is one entry of a .rels part.
type relationship struct {
	ID       string
	Type     string
	Target   string
	External bool
}

// slideRef ties a slide part to its presentation-level ids.
type slideRef struct {
	Num   int
	ID    int
	RelID string
}

type packageData struct {
	Title   string
	Author  string
	Created string
	Width   int64
	Height  int64
	Slides  []slideRef
}

var funcs = template.FuncMap{
	"xml": func(s string) string {
		var b bytes.Buffer
		_ = xml.EscapeText(&b, []byte(s))
		return b.String()
	},
}

var (
	contentTypesTmpl = template.Must(template.New("[Content_Types].xml").Funcs(funcs).Parse(xml.Header +
		`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>` +
		`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>` +
		`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>` +
		`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>` +
		`<Override PartName="/ppt/presProps.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"/>` +
		`<Override PartName="/ppt/viewProps.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"/>` +
		`<Override PartName="/ppt/tableStyles.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"/>` +
		`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
		`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>` +
		`{{range .Slides}}<Override PartName="/ppt/slides/slide{{.Num}}.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>{{end}}` +
		`</Types>`))

	relsTmpl = template.Must(template.New("rels").Funcs(funcs).Parse(xml.Header +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`{{range .}}<Relationship Id="{{.ID}}" Type="{{.Type}}" Target="{{xml .Target}}"{{if .External}} TargetMode="External"{{end}}/>{{end}}` +
		`</Relationships>`))

	coreTmpl = template.Must(template.New("core.xml").Funcs(funcs).Parse(xml.Header +
		`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
		`xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" ` +
		`xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
		`{{if .Title}}<dc:title>{{xml .Title}}</dc:title>{{end}}` +
		`{{if .Author}}<dc:creator>{{xml .Author}}</dc:creator>{{end}}` +
		`{{if .Created}}<dcterms:created xsi:type="dcterms:W3CDTF">{{.Created}}</dcterms:created>{{end}}` +
		`</cp:coreProperties>`))

	appTmpl = template.Must(template.New("app.xml").Funcs(funcs).Parse(xml.Header +
		`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" ` +
		`xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">` +
		`<Application>pitchdeck</Application><Slides>{{len .Slides}}</Slides>` +
		`</Properties>`))

	presentationTmpl = template.Must(template.New("presentation.xml").Funcs(funcs).Parse(xml.Header +
		`<p:presentation ` + namespaces + ` saveSubsetFonts="1">` +
		`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>` +
		`{{if .Slides}}<p:sldIdLst>{{range .Slides}}<p:sldId id="{{.ID}}" r:id="{{.RelID}}"/>{{end}}</p:sldIdLst>{{end}}` +
		`<p:sldSz cx="{{.Width}}" cy="{{.Height}}"/><p:notesSz cx="6858000" cy="9144000"/>` +
		`</p:presentation>`))
)

func render(t *template.Template, data interface{}) ([]byte, error) {
	var b bytes.Buffer
	if err := t.Execute(&b, data); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

const emptyTree = `<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr></p:spTree>`

const slideMaster = xml.Header +
	`<p:sldMaster ` + namespaces + `>` +
	`<p:cSld><p:bg><p:bgRef idx="1001"><a:schemeClr val="bg1"/></p:bgRef></p:bg>` + emptyTree + `</p:cSld>` +
	`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" ` +
	`accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
	`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>` +
	`<p:txStyles><p:titleStyle/><p:bodyStyle/><p:otherStyle/></p:txStyles>` +
	`</p:sldMaster>`

const slideLayout = xml.Header +
	`<p:sldLayout ` + namespaces + ` type="blank" preserve="1">` +
	`<p:cSld name="Blank">` + emptyTree + `</p:cSld>` +
	`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
	`</p:sldLayout>`

const presProps = xml.Header + `<p:presentationPr ` + namespaces + `/>`

const viewProps = xml.Header + `<p:viewPr ` + namespaces + `><p:gridSpacing cx="76200" cy="76200"/></p:viewPr>`

const tableStyles = xml.Header +
	`<a:tblStyleLst xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" def="{5C22544A-7EE6-4342-B048-85BDC9FD1C3A}"/>`

const theme = xml.Header +
	`<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Pitchdeck">` +
	`<a:themeElements>` +
	`<a:clrScheme name="Pitchdeck">` +
	`<a:dk1><a:srgbClr val="0A0E27"/></a:dk1><a:lt1><a:srgbClr val="FFFFFF"/></a:lt1>` +
	`<a:dk2><a:srgbClr val="1E3C72"/></a:dk2><a:lt2><a:srgbClr val="B8C5D6"/></a:lt2>` +
	`<a:accent1><a:srgbClr val="00D4FF"/></a:accent1><a:accent2><a:srgbClr val="10B981"/></a:accent2>` +
	`<a:accent3><a:srgbClr val="EF4444"/></a:accent3><a:accent4><a:srgbClr val="22C55E"/></a:accent4>` +
	`<a:accent5><a:srgbClr val="1E3C72"/></a:accent5><a:accent6><a:srgbClr val="065F46"/></a:accent6>` +
	`<a:hlink><a:srgbClr val="00D4FF"/></a:hlink><a:folHlink><a:srgbClr val="B8C5D6"/></a:folHlink>` +
	`</a:clrScheme>` +
	`<a:fontScheme name="Pitchdeck">` +
	`<a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>` +
	`<a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>` +
	`</a:fontScheme>` +
	`<a:fmtScheme name="Pitchdeck">` +
	`<a:fillStyleLst>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`</a:fillStyleLst>` +
	`<a:lnStyleLst>` +
	`<a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`<a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`<a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`</a:lnStyleLst>` +
	`<a:effectStyleLst>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`</a:effectStyleLst>` +
	`<a:bgFillStyleLst>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`</a:bgFillStyleLst>` +
	`</a:fmtScheme>` +
	`</a:themeElements>` +
	`</a:theme>`

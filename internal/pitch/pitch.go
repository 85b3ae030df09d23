// Package pitch holds the content of the BRK "Atitude & Inovação 2025" pitch
// deck for the image georeferencing system.
package pitch

import "github.com/maaslalani/pitchdeck/internal/deck"

// DefaultOutput is the file written when no output path is given.
const DefaultOutput = "Apresentacao_BRK_Atitude_Inovacao_2025.pptx"

// Document metadata.
const (
	Title  = "Sistema de Georreferenciamento de Imagens para Saneamento"
	Author = "Prêmio BRK Atitude & Inovação 2025"
)

// Palette returns the corporate colors.
func Palette() deck.Palette {
	return deck.Palette{
		deck.RoleBackground:     deck.RGB(10, 14, 39),    // #0a0e27
		deck.RoleSurface:        deck.RGB(30, 60, 114),   // #1e3c72
		deck.RoleAccent:         deck.RGB(0, 212, 255),   // #00d4ff
		deck.RoleText:           deck.RGB(255, 255, 255), // #ffffff
		deck.RoleMuted:          deck.RGB(184, 197, 214), // #b8c5d6
		deck.RoleSuccess:        deck.RGB(16, 185, 129),  // #10b981
		deck.RoleSuccessSurface: deck.RGB(6, 95, 70),
		deck.RoleSuccessText:    deck.RGB(209, 250, 229),
		deck.RoleDanger:         deck.RGB(239, 68, 68), // #ef4444
		deck.RoleDangerSurface:  deck.RGB(127, 29, 29),
		deck.RoleGrowth:         deck.RGB(34, 197, 94),
		deck.RoleGrowthSurface:  deck.RGB(20, 83, 45),
	}
}

// File returns the whole deck as a deck file.
func File() *deck.File {
	return &deck.File{
		Title:   Title,
		Author:  Author,
		Palette: Palette(),
		Slides:  Slides(),
	}
}

// Slides returns the slides of the deck in presentation order.
func Slides() []deck.SlideSpec {
	return []deck.SlideSpec{
		cover(),
		operationalContext(),
		overview(),
		flow(),
		applications(),
		benefits(),
		technology(),
		differentiators(),
		roadmap(),
		conclusion(),
		thanks(),
	}
}

func cover() deck.SlideSpec {
	return deck.Cover{
		Title:    "📍 Sistema de Georreferenciamento\nde Imagens para Saneamento",
		Badge:    "🏆 PRÊMIO BRK\nATITUDE & INOVAÇÃO 2025",
		Subtitle: "Solução tecnológica para otimização de processos operacionais\ne gestão inteligente de ativos em infraestrutura de saneamento",
		Metrics: []deck.Metric{
			{Value: "R$ 0", Label: "INVESTIMENTO\nNECESSÁRIO"},
			{Value: "80%", Label: "REDUÇÃO DE TEMPO\nEM RELATÓRIOS"},
			{Value: "100%", Label: "PRECISÃO EM\nGEOLOCALIZAÇÃO"},
		},
	}
}

func operationalContext() deck.SlideSpec {
	return deck.TwoColumn{
		Header: deck.Header{Title: "Contexto Operacional no Saneamento"},
		Left: deck.Column{
			Heading: "❌ Desafios Atuais",
			Tone:    deck.ToneDanger,
			Items: []string{
				"• Documentação Manual: Horas compilando relatórios",
				"• Perda de Informações: Fotos sem localização precisa",
				"• Retrabalho: Retornar ao campo para validar dados",
				"• Custos Elevados: Deslocamentos desnecessários",
				"• Gestão Fragmentada: Dificuldade em consolidar dados",
			},
		},
		Right: deck.Column{
			Heading: "✅ Nossa Solução",
			Tone:    deck.ToneGrowth,
			Items: []string{
				"• Automação Total: Extração automática de GPS e metadados",
				"• Rastreabilidade Completa: Coordenadas precisas",
				"• Primeira Vez Certo: Dados validados desde a captura",
				"• Otimização de Recursos: Economia em tempo e equipe",
				"• Centralização Inteligente: Plataforma única de gestão",
			},
		},
	}
}

func overview() deck.SlideSpec {
	return deck.FeatureGrid{
		Header: deck.Header{Title: "Visão Geral da Solução Tecnológica"},
		Banner: &deck.Banner{
			Title: "🔐 Plataforma Web de Alto Desempenho",
			Body:  "Sistema com tecnologias de ponta (Next.js 15, React 19, TypeScript) garantindo processamento local,\nsegurança de dados e conformidade LGPD. Totalmente responsivo para uso em campo.",
		},
		Features: []deck.Feature{
			{Title: "🌐 100% Web", Body: "Sem instalação. Acesso via\nnavegador de qualquer dispositivo"},
			{Title: "🔒 Seguro", Body: "Processamento local.\nDados nunca saem do dispositivo"},
			{Title: "⚡ Rápido", Body: "Processamento em segundos,\nmesmo para múltiplas imagens"},
		},
	}
}

func flow() deck.SlideSpec {
	return deck.StepList{
		Header: deck.Header{Title: "Fluxo Operacional do Sistema"},
		Steps: []deck.Step{
			{Marker: "1", Title: "Captura em Campo", Body: "Técnico fotografa com smartphone (GPS ativado)\nFormatos: JPG, PNG, HEIC"},
			{Marker: "2", Title: "Upload na Plataforma", Body: "Acessa via navegador e faz upload\nAté 50 fotos mobile / ilimitado desktop"},
			{Marker: "3", Title: "Processamento Automático", Body: "Extração instantânea de GPS, data, hora,\naltitude e thumbnail otimizado"},
			{Marker: "4", Title: "Visualização e Edição", Body: "Interface exibe dados. Usuário adiciona\ndescrições e ajusta status"},
			{Marker: "5", Title: "Exportação Múltiplos Formatos", Body: "PDF, Excel, Word, KML, JSON\nconforme necessidade"},
		},
	}
}

func applications() deck.SlideSpec {
	return deck.FeatureGrid{
		Header: deck.Header{Title: "Aplicações Práticas em Saneamento"},
		Features: []deck.Feature{
			{Icon: "🔧", Title: "Manutenção Preventiva", Body: "Registro georeferenciado de inspeções\nem redes de água e esgoto"},
			{Icon: "💧", Title: "Gestão de Vazamentos", Body: "Documentação com localização exata\npara análise de padrões"},
			{Icon: "📊", Title: "Cadastro de Ativos", Body: "Mapeamento de hidrômetros, válvulas\ncom coordenadas precisas"},
			{Icon: "🏗️", Title: "Acompanhamento de Obras", Body: "Registro cronológico e geolocalizado\nde progresso de instalações"},
			{Icon: "📱", Title: "Ordens de Serviço", Body: "Evidências fotográficas geolocalizadas\nde serviços executados"},
			{Icon: "🗺️", Title: "Integração SIG", Body: "Exportação KML para Google Earth\ne sistemas GIS corporativos"},
		},
	}
}

func benefits() deck.SlideSpec {
	return deck.BulletPanels{
		Header:      deck.Header{Title: "Benefícios Mensuráveis e ROI"},
		ListHeading: "Ganhos Operacionais",
		Items: []string{
			"⏱️  80% de redução no tempo de elaboração de relatórios",
			"🎯  100% de precisão na localização de ativos",
			"🚗  Redução de deslocamentos desnecessários",
			"📈  Aumento de produtividade das equipes",
			"🌱  Sustentabilidade: menos impressões e combustível",
		},
		Panels: []deck.Panel{
			{
				Heading: "Investimento Necessário",
				Value:   "R$ 0,00",
				Items: []string{
					"✅ Licença gratuita",
					"✅ Sem limite de usuários",
					"✅ Sem limite de processamento",
					"✅ Atualizações incluídas",
					"✅ Suporte da comunidade",
					"✅ Hospedagem inclusa",
				},
				Tone:   deck.ToneSuccess,
				Height: 3.9,
			},
			{
				Heading: "💰 Análise Comparativa",
				Body:    "Soluções comerciais: R$ 500 a R$ 2.000/usuário/ano\nEquipe de 50 usuários: economia de até R$ 100.000/ano",
				Height:  1.5,
			},
		},
	}
}

func technology() deck.SlideSpec {
	return deck.BulletPanels{
		Header:      deck.Header{Title: "Arquitetura Tecnológica e Segurança"},
		ListHeading: "Stack Tecnológico",
		ItemSize:    15,
		Items: []string{
			"⚛️  Next.js 15 + React 19: Framework de alta performance",
			"📘  TypeScript: Código robusto e tipagem estática",
			"🎨  Tailwind CSS: Interface responsiva e profissional",
			"📦  ExifReader: Extração eficiente de metadados EXIF",
			"☁️  Vercel Edge Network: Deploy global com baixa latência",
		},
		AsideHeading: "Segurança e Conformidade",
		Panels: []deck.Panel{
			{Heading: "🔐 Privacidade Total", Body: "Processamento 100% no navegador. Imagens nunca transmitidas.\nConformidade total com LGPD."},
			{Heading: "🛡️ Segurança de Dados", Body: "HTTPS obrigatório. Sem armazenamento em nuvem.\nUsuário mantém controle total."},
			{Heading: "✅ Disponibilidade", Body: "SLA 99.9% garantido. CDN global.\nFuncionamento offline após carregamento."},
		},
	}
}

func differentiators() deck.SlideSpec {
	return deck.FeatureGrid{
		Header: deck.Header{Title: "Diferenciais Competitivos"},
		Hero:   true,
		Features: []deck.Feature{
			{Icon: "🚀", Title: "Velocidade", Body: "Processamento instantâneo vs.\nhoras de trabalho manual"},
			{Icon: "💎", Title: "Qualidade", Body: "Dados estruturados e\npadronizados automaticamente"},
			{Icon: "🌍", Title: "Acessibilidade", Body: "Uso em qualquer lugar,\nqualquer dispositivo"},
		},
		Highlights: &deck.Highlights{
			Heading: "Por Que Escolher Esta Solução?",
			Pairs: []deck.Pair{
				{Left: "💰 Custo Zero", Right: "🎯 Fácil Adoção"},
				{Left: "📱 Mobile First", Right: "🔌 Interoperabilidade"},
				{Left: "🔄 Evolução Contínua", Right: "🌐 Escalável"},
			},
		},
	}
}

func roadmap() deck.SlideSpec {
	return deck.StepList{
		Header: deck.Header{Title: "Roadmap de Evolução 2025-2026"},
		Steps: []deck.Step{
			{Marker: "Q1", Title: "Mapa Interativo", Body: "Visualização de imagens em mapa com clustering e filtros"},
			{Marker: "Q2", Title: "Medições Geodésicas", Body: "Cálculo de distâncias, áreas e perímetros"},
			{Marker: "Q3", Title: "IA para Análise", Body: "Detecção automática de anomalias em infraestrutura"},
			{Marker: "Q4", Title: "API Corporativa", Body: "Integração com sistemas ERP/SAP e GIS corporativos"},
		},
		Aside: &deck.Panel{
			Heading: "🎯 Visão de Longo Prazo",
			Body:    "Tornar-se a principal plataforma open-source de\ngeorreferenciamento para o setor de saneamento no Brasil:",
			Items: []string{
				"🤝  Comunidade ativa de desenvolvedores",
				"📚  Treinamentos e certificações",
				"🌎  Expansão para outros segmentos",
				"🔬  Parcerias com universidades",
			},
		},
	}
}

func conclusion() deck.SlideSpec {
	return deck.MetricRow{
		Header: deck.Header{Title: "Inovação Acessível que Gera Valor Real"},
		Metrics: []deck.Metric{
			{Value: "R$ 0", Label: "INVESTIMENTO"},
			{Value: "∞", Label: "POTENCIAL\nDE ROI"},
			{Value: "100%", Label: "ATITUDE\nBRK"},
		},
		Highlight: &deck.Panel{
			Heading: "Esta é a Atitude da Inovação",
			Body:    "Democratizar tecnologia de ponta, eliminar barreiras de custo,\notimizar processos operacionais e gerar eficiência mensurável\npara o setor de saneamento brasileiro.",
		},
		CallToAction: "Acesse e Teste Agora",
		Link: &deck.Link{
			Text: "🔗 relatoriopendv0.vercel.app",
			URL:  "https://relatoriopendv0.vercel.app",
		},
	}
}

func thanks() deck.SlideSpec {
	return deck.Closing{
		Title:    "Obrigado!",
		Subtitle: "Comprometidos com a excelência operacional\ne a transformação digital do saneamento brasileiro",
		Cards: []deck.Feature{
			{Icon: "📧", Title: "Contato", Body: "Dúvidas técnicas e\noperacionais"},
			{Icon: "💡", Title: "Sugestões", Body: "Sua experiência\nnos melhora"},
			{Icon: "🏆", Title: "BRK Atitude", Body: "Inovação que\ntransforma"},
		},
	}
}

package navigation

import "strconv"

// State tracks the current buffer, page, and total number of slides
type State struct {
	Buffer      string
	Page        int
	TotalSlides int
}

// Navigate receives the current State and keyPress, and returns the new State.
func Navigate(state State, keyPress string) State {
	switch keyPress {
	case "g":
		if state.Buffer == "g" {
			return State{Page: 0, TotalSlides: state.TotalSlides}
		}
		return State{Buffer: "g", Page: state.Page, TotalSlides: state.TotalSlides}
	case "G":
		page := state.TotalSlides - 1
		// 3G jumps to the third slide.
		if n, err := strconv.Atoi(state.Buffer); err == nil {
			page = clamp(n-1, state.TotalSlides)
		}
		return State{Page: page, TotalSlides: state.TotalSlides}
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		buffer := state.Buffer
		if _, err := strconv.Atoi(buffer); err != nil {
			buffer = ""
		}
		return State{Buffer: buffer + keyPress, Page: state.Page, TotalSlides: state.TotalSlides}
	case " ", "down", "j", "right", "l", "enter", "n", "pgdown":
		return State{Page: clamp(state.Page+repeat(state.Buffer), state.TotalSlides), TotalSlides: state.TotalSlides}
	case "up", "k", "left", "h", "p", "pgup", "N":
		return State{Page: clamp(state.Page-repeat(state.Buffer), state.TotalSlides), TotalSlides: state.TotalSlides}
	default:
		return State{Page: state.Page, TotalSlides: state.TotalSlides}
	}
}

// repeat is the count prefix held in buffer, at least 1.
func repeat(buffer string) int {
	n, err := strconv.Atoi(buffer)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func clamp(page, total int) int {
	if page >= total {
		page = total - 1
	}
	if page < 0 {
		page = 0
	}
	return page
}

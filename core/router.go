package core

// ScreenStack holds the modal overlays above the tab body. Only the top
// screen receives input; the rest wait underneath.
type ScreenStack []Screen

func (s *ScreenStack) Push(screen Screen) {
	if screen != nil {
		*s = append(*s, screen)
	}
}

func (s *ScreenStack) Pop() Screen {
	n := len(*s)
	if n == 0 {
		return nil
	}
	top := (*s)[n-1]
	*s = (*s)[:n-1]
	return top
}

// ReplaceTop swaps the active screen for the value its Update returned.
func (s ScreenStack) ReplaceTop(screen Screen) {
	if n := len(s); n > 0 && screen != nil {
		s[n-1] = screen
	}
}

func (s ScreenStack) Top() Screen {
	if n := len(s); n > 0 {
		return s[n-1]
	}
	return nil
}

func (s ScreenStack) Len() int { return len(s) }

package ui

// pagerClosedMsg is sent when the ov pager returns control
type pagerClosedMsg struct {
	what string
	err  error
}

package agent

// Wire protocol command verbs. Requests are single newline-terminated lines;
// commands with a payload use VERB:payload framing.
const (
	CmdGetElements        = "GET_ELEMENTS"
	CmdClickByCoords      = "CLICK_BY_COORDS"
	CmdClickByID          = "CLICK_BY_ID"
	CmdClickByText        = "CLICK_BY_TEXT"
	CmdClickByContentDesc = "CLICK_BY_CONTENT_DESC"
	CmdInputText          = "INPUT_TEXT"
	CmdScrollUp           = "SCROLL_UP"
	CmdScrollDown         = "SCROLL_DOWN"
)

// responseOK is the literal success response for action commands.
const responseOK = "OK"

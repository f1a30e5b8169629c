package executor

const (
	ActionFetchNews       = "fetch_news"
	ActionSearchWikipedia = "search_wikipedia:"

	ErrorPrefix = "Error: "

	MsgCommandSucceeded  = "Command executed successfully"
	MsgCommandsSucceeded = "Commands executed successfully"
	MsgNoNews            = "No news available"
	MsgNoWikipedia       = "No Wikipedia results"
)

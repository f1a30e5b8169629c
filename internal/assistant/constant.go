package assistant

// LLMConfidence is attached to commands suggested by the language model.
const LLMConfidence = 0.7

const (
	// PromptCommand is formatted with the raw utterance.
	PromptCommand = `User said: "%s"
This is a Linux system. If this is a system command request, respond with:
COMMAND: [linux command to execute]
EXPLANATION: [brief explanation]

If it's not a system command, respond normally as JARVIS assistant.

Examples:
- "open firefox" → COMMAND: firefox
- "create folder named test" → COMMAND: mkdir test
- "take screenshot" → COMMAND: gnome-screenshot -f ~/screenshot_$(date +%%Y%%m%%d_%%H%%M%%S).png

Please provide a concise summary in 2 sentences.`

	DefaultExplanation = "Executing command"
)

const (
	MsgRisky        = "This command might be risky: %s. Do you want me to proceed? Say 'yes' or 'no'."
	MsgLLMSuggested = "I think you want me to run: \"%s\". %s. Should I proceed? Say 'yes' or 'no'."
	MsgEmptyText    = "I didn't catch that. Please say it again."
)

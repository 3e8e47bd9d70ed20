package turn

// node identifies one stage of the turn pipeline. The graph is fixed: gates
// run before classifiers, the crisis check runs before intent routing, and
// exactly one terminal node executes per turn.
type node string

const (
	nodeCheckInputModeration node = "check_input_moderation"
	nodeHandleBlocked        node = "handle_blocked"
	nodeHandleInjection      node = "handle_injection"
	nodeCheckPII             node = "check_pii"
	nodeHandlePII            node = "handle_pii"
	nodeAnalyzeEmotion       node = "analyze_emotion"
	nodeCheckCrisis          node = "check_crisis"
	nodeCrisisResponse       node = "crisis_response"
	nodeCheckJournalIntent   node = "check_journal_intent"
	nodeJournalResponse      node = "journal_response"
	nodeChatResponse         node = "chat_response"
	nodeValidateOutput       node = "validate_output"
	nodeEnd                  node = "end"
)

// maxSteps bounds the run loop: the graph is acyclic and no node may run
// twice, so any longer walk is a wiring bug.
const maxSteps = 12

package apierrors

const (
	MsgInvalidTaskPayload  = "invalidTaskPayload"
	MsgFailCreateTask      = "failCreateTask"
	MsgInvalidSnapshot     = "invalidSnapshot"
	MsgFailImport          = "failImport"
	MsgInvalidAdvicePrompt = "invalidAdvicePrompt"
	MsgFailAdvice          = "failAdvice"
)

package scheduler

const (
	LogMsgTickTaskPanicked = "Tick task panicked"
	LogMsgTickQueueDrained = "Tick queue drained on shutdown"
)

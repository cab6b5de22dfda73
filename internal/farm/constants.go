package farm

// HarvestExperience is the experience awarded for every successful harvest.
const HarvestExperience = 10

// Notification titles
const (
	NotificationTitleReady  = "Crop Ready!"
	NotificationTitleUpdate = "Crop Update"
)

// Notification message formats
const (
	NotificationMsgReadyFormat  = "Your %s is ready to harvest!"
	NotificationMsgUpdateFormat = "Your %s has reached the %s stage!"
)

// Log message constants
const (
	LogMsgPlantRequested      = "Plant requested"
	LogMsgPlantSucceeded      = "Crop planted"
	LogMsgHarvestRequested    = "Harvest requested"
	LogMsgHarvestSucceeded    = "Crop harvested"
	LogMsgReconcileStarted    = "Growth reconciliation pass started"
	LogMsgReconcileFinished   = "Growth reconciliation pass finished"
	LogMsgReconcileFailed     = "Growth reconciliation pass failed"
	LogMsgEventPublishFailed  = "Failed to publish event"
)

// Metric result labels
const (
	ResultOK    = "ok"
	ResultError = "error"
)

package model

// DialogMode says whether the event dialog is visible.
type DialogMode int

const (
	DialogClosed DialogMode = iota
	DialogOpen
)

// DialogType selects what the open dialog is doing.
type DialogType int

const (
	DialogNone DialogType = iota
	DialogCreateEvent
	DialogShowEvent
	DialogEditEvent
)

// DialogState drives dialog visibility and mode. Zero value = closed/none.
type DialogState struct {
	Mode DialogMode
	Type DialogType
}

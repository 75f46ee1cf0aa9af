package models

// Equipment is the fixed checklist tracked for every meeting room.
// A review replaces the whole set at once; a flag left unchecked on the
// review form is recorded as false.
type Equipment struct {
	TV              bool `gorm:"column:tv;default:false" json:"tv"`
	RemoteControl   bool `gorm:"column:remote_control;default:false" json:"remoteControl"`
	ExtensionLine   bool `gorm:"column:extension_line;default:false" json:"extensionLine"`
	Videoconference bool `gorm:"column:videoconference;default:false" json:"videoconference"`
	Manual          bool `gorm:"column:manual;default:false" json:"manual"`
	Monitor         bool `gorm:"column:monitor;default:false" json:"monitor"`
}

// EquipmentFlag pairs a checklist key with its display label and the
// recorded state.
type EquipmentFlag struct {
	Key     string
	Label   string
	Present bool
}

// Flags returns the checklist in fixed display order. This is the single
// label table shared by the CSV, report and spreadsheet renderers.
func (e Equipment) Flags() []EquipmentFlag {
	return []EquipmentFlag{
		{Key: "tv", Label: "TV", Present: e.TV},
		{Key: "remoteControl", Label: "Controle", Present: e.RemoteControl},
		{Key: "extensionLine", Label: "Ramal", Present: e.ExtensionLine},
		{Key: "videoconference", Label: "Videoconf", Present: e.Videoconference},
		{Key: "manual", Label: "Manual", Present: e.Manual},
		{Key: "monitor", Label: "Monitor", Present: e.Monitor},
	}
}

// EquipmentLabels returns the display labels in the same order as Flags.
func EquipmentLabels() []string {
	flags := Equipment{}.Flags()
	labels := make([]string, len(flags))
	for i, f := range flags {
		labels[i] = f.Label
	}
	return labels
}

package datefmt

// DebugInfo describes the viewer zone as seen by the formatter
type DebugInfo struct {
	Timezone         string `json:"timezone"`
	Language         string `json:"language"`
	CurrentTimeUTC   string `json:"currentTimeUTC"`
	CurrentTimeLocal string `json:"currentTimeLocal"`
	Offset           string `json:"offset"`
	OffsetMinutes    int    `json:"offsetMinutes"`
	IsDST            bool   `json:"isDST"`
}

const debugLayout = "2006-01-02 15:04:05"

// Debug reports the zone, both clocks and the current offset
func (f *Formatter) Debug() DebugInfo {
	now := f.now()
	local := now.In(f.loc)
	_, offset := local.Zone()
	return DebugInfo{
		Timezone:         f.zone,
		Language:         f.lang.String(),
		CurrentTimeUTC:   now.UTC().Format(debugLayout),
		CurrentTimeLocal: local.Format(debugLayout),
		Offset:           local.Format("-07:00"),
		OffsetMinutes:    offset / 60,
		IsDST:            local.IsDST(),
	}
}

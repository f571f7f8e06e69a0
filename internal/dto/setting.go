package dto

// SetSettingRequest overwrites a setting's value.
type SetSettingRequest struct {
	Value string `json:"value"`
}

// SettingResponse returns a single key/value pair.
type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

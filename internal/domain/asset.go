package domain

// UserAsset is an opaque reference to an uploaded background image. The
// engine never decodes or inspects pixel content.
type UserAsset struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	BlobURL string  `json:"blobUrl"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// Validate reports every schema violation in the asset reference.
func (a UserAsset) Validate() error {
	ve := &ValidationError{}
	ve.requireNonEmpty("id", a.ID)
	ve.requireNonEmpty("blobUrl", a.BlobURL)
	ve.requirePositive("width", a.Width)
	ve.requirePositive("height", a.Height)
	return ve.ErrOrNil()
}

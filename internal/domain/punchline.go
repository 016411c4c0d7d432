package domain

// ContentType gates which slot roles receive copy during generation.
type ContentType string

const (
	ContentAd    ContentType = "ad"
	ContentPromo ContentType = "promo"
	ContentMeme  ContentType = "meme"
)

func (c ContentType) valid() bool {
	switch c {
	case ContentAd, ContentPromo, ContentMeme:
		return true
	}
	return false
}

// PunchlineSet is the user's copy, keyed by semantic role. Only the
// headline is mandatory.
type PunchlineSet struct {
	Headline    string      `json:"headline"`
	Subheadline string      `json:"subheadline,omitempty"`
	CTA         string      `json:"cta,omitempty"`
	Caption     string      `json:"caption,omitempty"`
	ContentType ContentType `json:"contentType"`
}

// Validate reports every schema violation in the set.
func (p PunchlineSet) Validate() error {
	ve := &ValidationError{}
	ve.requireNonEmpty("headline", p.Headline)
	if !p.ContentType.valid() {
		ve.addf("contentType", "unknown content type %q", p.ContentType)
	}
	return ve.ErrOrNil()
}

// ValueFor returns the copy supplied for a role, or "" when the user left
// it empty.
func (p PunchlineSet) ValueFor(role SlotRole) string {
	switch role {
	case RoleHeadline:
		return p.Headline
	case RoleSubheadline:
		return p.Subheadline
	case RoleCTA:
		return p.CTA
	case RoleCaption:
		return p.Caption
	}
	return ""
}

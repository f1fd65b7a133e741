package domain

// AdCreative holds the text and media of an ad. Every field is optional
// until the creative step is completed.
type AdCreative struct {
	Headline     string `json:"headline" yaml:"headline"`
	Description  string `json:"description" yaml:"description"`
	ImageURL     string `json:"image_url" yaml:"image_url"`
	CallToAction string `json:"call_to_action" yaml:"call_to_action"`
}

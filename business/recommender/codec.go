package recommender

// A LabelCodec maps one categorical field between raw string values and the
// small integer codes the classifier was trained on. Encode is total: a value
// absent from training encodes to UnknownCode instead of failing, so scoring
// degrades instead of aborting when the live catalog drifts from the training
// data.
const (
	UnknownCode  = -1
	UnknownLabel = "Unknown"
)

type LabelCodec struct {
	field   string
	classes []string
	index   map[string]int
}

func NewLabelCodec(field string, classes []string) *LabelCodec {
	idx := make(map[string]int, len(classes))
	for i, c := range classes {
		idx[c] = i
	}
	return &LabelCodec{
		field:   field,
		classes: classes,
		index:   idx,
	}
}

func (c *LabelCodec) Field() string {
	return c.field
}

// Encode returns the trained code for raw, or UnknownCode. Never fails.
func (c *LabelCodec) Encode(raw string) int {
	if code, ok := c.index[raw]; ok {
		return code
	}
	return UnknownCode
}

// EncodeOrDefault encodes raw, falling back to the code of def when raw was
// not seen at training time. Used for the user side of a comparison, where a
// concrete trained code is needed for the feature vector.
func (c *LabelCodec) EncodeOrDefault(raw, def string) int {
	if code, ok := c.index[raw]; ok {
		return code
	}
	return c.Encode(def)
}

// Decode returns the training-time string for code, or UnknownLabel for
// UnknownCode and anything out of range.
func (c *LabelCodec) Decode(code int) string {
	if code < 0 || code >= len(c.classes) {
		return UnknownLabel
	}
	return c.classes[code]
}

// CodecSet bundles the codecs for the categorical fields the classifier
// consumes. Country preference matching works on raw strings and has no codec.
type CodecSet struct {
	Encryption *LabelCodec
	Handshake  *LabelCodec
	Logging    *LabelCodec
}

func (s *CodecSet) Complete() bool {
	return s != nil && s.Encryption != nil && s.Handshake != nil && s.Logging != nil
}

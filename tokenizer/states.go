package tokenizer

// State represents the tokenizer state. The tokenizer is a state
// machine transitioning between these states, per spec §4.1.
type State int

// Tokenizer states, the closed subset spec §4.1 names plus
// ScriptData/TemporaryBuffer for when the tree builder is inside
// <script>/<style> textual content.
const (
	DataState State = iota
	TagOpenState
	EndTagOpenState
	TagNameState
	BeforeAttributeNameState
	AttributeNameState
	AfterAttributeNameState
	BeforeAttributeValueState
	AttributeValueDoubleQuotedState
	AttributeValueSingleQuotedState
	AttributeValueUnquotedState
	AfterAttributeValueQuotedState
	SelfClosingStartTagState
	ScriptDataState
	ScriptDataLessThanSignState
	ScriptDataEndTagOpenState
	ScriptDataEndTagNameState
)

// String returns the name of the state, for debugging.
func (s State) String() string {
	names := [...]string{
		"Data",
		"TagOpen",
		"EndTagOpen",
		"TagName",
		"BeforeAttributeName",
		"AttributeName",
		"AfterAttributeName",
		"BeforeAttributeValue",
		"AttributeValueDoubleQuoted",
		"AttributeValueSingleQuoted",
		"AttributeValueUnquoted",
		"AfterAttributeValueQuoted",
		"SelfClosingStartTag",
		"ScriptData",
		"ScriptDataLessThanSign",
		"ScriptDataEndTagOpen",
		"ScriptDataEndTagName",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

package model

// ConversationId builds the canonical conversation key for two users:
// "C" + the lexicographically smaller uuid + "#" + the larger one.
// Both directions of a chat map to the same key, so a message is stored
// exactly once.
func ConversationId(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return "C" + a + "#" + b
}

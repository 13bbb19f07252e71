package app

// KeyBinding describes a single key binding for documentation.
type KeyBinding struct {
	Keys        []string
	Description string
	Context     string // "global", "playback", "queue", "picker"
}

// KeyMap contains all key bindings for help generation.
var KeyMap = []KeyBinding{
	// Global
	{[]string{"q", "ctrl+c"}, "Quit application", "global"},
	{[]string{"a"}, "Add files", "global"},

	// Playback
	{[]string{"space"}, "Play/pause", "playback"},
	{[]string{"n", "pgdown"}, "Next track", "playback"},
	{[]string{"p", "pgup"}, "Previous track", "playback"},
	{[]string{"left", "h"}, "Seek back", "playback"},
	{[]string{"right", "l"}, "Seek forward", "playback"},

	// Queue
	{[]string{"j", "down"}, "Move down", "queue"},
	{[]string{"k", "up"}, "Move up", "queue"},
	{[]string{"g"}, "First track", "queue"},
	{[]string{"G"}, "Last track", "queue"},
	{[]string{"enter"}, "Play track", "queue"},
	{[]string{"d", "delete"}, "Remove track", "queue"},
	{[]string{"shift+j"}, "Move track down", "queue"},
	{[]string{"shift+k"}, "Move track up", "queue"},

	// Picker
	{[]string{"enter"}, "Add selected file", "picker"},
	{[]string{"esc"}, "Close picker", "picker"},
}

// KeysByContext returns key bindings filtered by context.
func KeysByContext(context string) []KeyBinding {
	var result []KeyBinding
	for _, kb := range KeyMap {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

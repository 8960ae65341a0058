package command

import (
	"sort"
	"strings"
)

// Kind selects the dispatch policy for a command. Most commands are
// KindRequest; the remaining kinds carry behavior the plain
// template-to-GET translation cannot express.
type Kind uint8

const (
	// KindRequest renders the template and issues a plain GET.
	KindRequest Kind = iota
	// KindWake sends the Wake-on-LAN magic packet instead of HTTP.
	KindWake
	// KindBatteryLevel extracts the battery field from /status.
	KindBatteryLevel
	// KindStream maps the HTTP outcome to "1"/"0" so the caller can
	// tell whether the camera accepted the stream restart.
	KindStream
)

// Definition describes one catalog entry. The JSON shape is what
// "commands --json" prints; Kind is a dispatch detail and stays out.
type Definition struct {
	Kind     Kind              `json:"-"`
	Name     string            `json:"name"`
	Arity    int               `json:"arity"`
	Template string            `json:"template"`          // URL path with one "{}" per argument
	Mapping  map[string]string `json:"values,omitempty"` // nil when arguments pass through raw
}

// Message is a parsed command ready to dispatch. Args holds exactly
// Arity device codes, mapping already applied.
type Message struct {
	Def  Definition
	Args []string
}

var definitions = []Definition{
	{Name: "default_boot_mode", Arity: 1, Template: "/setting/53/{}", Mapping: map[string]string{"video": "0", "photo": "1", "multishot": "2"}},
	{Name: "display_off", Template: "/setting/58/0"},
	{Name: "display_on", Template: "/setting/58/1"},
	{Kind: KindBatteryLevel, Name: "get_battery_level", Template: "/status"},
	{Name: "get_info"},
	{Name: "get_status", Template: "/status"},
	{Name: "power_off", Template: "/command/system/sleep"},
	{Name: "record_start", Template: "/command/shutter?p=1"},
	{Name: "record_stop", Template: "/command/shutter?p=0"},
	{Kind: KindStream, Name: "stream", Template: "/execute?p1=gpStream&a1=proto_v2&c1=restart"},
	{Name: "stream_bitrate", Arity: 1, Template: "/setting/62/{}"},
	{Name: "stream_resolution", Arity: 1, Template: "/setting/64/{}", Mapping: map[string]string{"720p": "7", "480p": "4", "240p": "1"}},
	{Name: "video_resolution", Arity: 1, Template: "/setting/2/{}", Mapping: map[string]string{"4k": "1", "1440p": "7", "1080p": "9", "720p": "12"}},
	{Kind: KindWake, Name: "wake"},
	{Name: "zoom", Arity: 1, Template: "/command/digital_zoom?range_pcnt={}"},
}

var catalog = func() map[string]Definition {
	m := make(map[string]Definition, len(definitions))
	for _, d := range definitions {
		m[d.Name] = d
	}
	return m
}()

// Lookup returns the definition for name. Names are case-sensitive.
func Lookup(name string) (Definition, bool) {
	d, ok := catalog[name]
	return d, ok
}

// Names returns every command name in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the catalog entries sorted by name.
func All() []Definition {
	defs := make([]Definition, 0, len(catalog))
	for _, name := range Names() {
		defs = append(defs, catalog[name])
	}
	return defs
}

// RenderPath substitutes args into the template placeholders in order.
func (d Definition) RenderPath(args []string) string {
	path := d.Template
	for _, arg := range args {
		path = strings.Replace(path, "{}", arg, 1)
	}
	return path
}

// Path renders the message's URL path.
func (m Message) Path() string {
	return m.Def.RenderPath(m.Args)
}

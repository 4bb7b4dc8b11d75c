package bridge

import (
	"strings"

	"github.com/wippyai/rtc-bridge/errors"
	"github.com/wippyai/rtc-bridge/registry"
)

// ChannelKind is the kind segment of a channel name.
type ChannelKind string

const (
	ChannelPlugin            ChannelKind = "plugin"
	ChannelEngine            ChannelKind = "engine"
	ChannelRoom              ChannelKind = "room"
	ChannelSpatialAudio      ChannelKind = "spatial_audio"
	ChannelRangeAudio        ChannelKind = "range_audio"
	ChannelMediaPlayer       ChannelKind = "media_player"
	ChannelAudioEffectPlayer ChannelKind = "audio_effect_player"
	ChannelKTVManager        ChannelKind = "ktv_manager"
	ChannelKTVPlayer         ChannelKind = "ktv_player"
	ChannelAudioMixing       ChannelKind = "audio_mixing_manager"
	ChannelVideoEffect       ChannelKind = "video_effect"
	ChannelSingScoring       ChannelKind = "sing_scoring_manager"
)

type channelInfo struct {
	target    registry.Kind
	singleton bool
	root      bool
}

var channelKinds = map[ChannelKind]channelInfo{
	ChannelPlugin:            {root: true, singleton: true},
	ChannelEngine:            {target: registry.KindEngine, singleton: true},
	ChannelRoom:              {target: registry.KindRoom},
	ChannelSpatialAudio:      {target: registry.KindRoom},
	ChannelRangeAudio:        {target: registry.KindRoom},
	ChannelMediaPlayer:       {target: registry.KindMediaPlayer},
	ChannelAudioEffectPlayer: {target: registry.KindAudioEffectPlayer},
	ChannelKTVManager:        {target: registry.KindKTVManager, singleton: true},
	ChannelKTVPlayer:         {target: registry.KindKTVPlayer},
	ChannelAudioMixing:       {target: registry.KindEngine, singleton: true},
	ChannelVideoEffect:       {target: registry.KindEngine, singleton: true},
	ChannelSingScoring:       {target: registry.KindSingScoring, singleton: true},
}

// ChannelFor returns the channel kind that addresses instances of k.
func ChannelFor(k registry.Kind) ChannelKind {
	return ChannelKind(k)
}

// Route is a parsed channel name.
type Route struct {
	Channel string
	Kind    ChannelKind
	ID      string
}

// Root reports whether the route addresses the plugin's root channel.
func (r Route) Root() bool {
	return channelKinds[r.Kind].root
}

// Key returns the registry key of the instance the route resolves to.
// Facet channels resolve to their room or to the engine.
func (r Route) Key() registry.Key {
	return registry.Key{Kind: channelKinds[r.Kind].target, ID: r.ID}
}

// Naming formats and parses channel names under a namespace prefix.
type Naming struct {
	Namespace string
}

// Format names the channel for kind and id.
func (n Naming) Format(kind ChannelKind, id string) string {
	if id == "" {
		return n.Namespace + string(kind)
	}
	return n.Namespace + string(kind) + "#" + id
}

// ForKey names the primary channel of a registry key.
func (n Naming) ForKey(k registry.Key) string {
	return n.Format(ChannelFor(k.Kind), k.ID)
}

// Parse splits a channel name into kind and id. The kind ends at the first
// '#', so ids may themselves contain '#'.
func (n Naming) Parse(name string) (Route, error) {
	rest, ok := strings.CutPrefix(name, n.Namespace)
	if !ok {
		return Route{}, invalidChannel(name, "namespace mismatch")
	}

	kind, id := rest, ""
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		kind, id = rest[:i], rest[i+1:]
		if id == "" {
			return Route{}, invalidChannel(name, "empty instance id")
		}
	}

	info, ok := channelKinds[ChannelKind(kind)]
	if !ok {
		return Route{}, invalidChannel(name, "unknown kind "+kind)
	}
	if info.singleton && id != "" {
		return Route{}, invalidChannel(name, kind+" takes no instance id")
	}
	if !info.singleton && id == "" {
		return Route{}, invalidChannel(name, kind+" requires an instance id")
	}
	return Route{Channel: name, Kind: ChannelKind(kind), ID: id}, nil
}

func invalidChannel(name, detail string) error {
	return errors.New(errors.PhaseCall, errors.KindInvalidChannel).
		Value(name).Detail("%s", detail).Build()
}

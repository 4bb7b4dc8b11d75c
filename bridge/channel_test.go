package bridge

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/rtc-bridge/errors"
	"github.com/wippyai/rtc-bridge/registry"
)

func TestNaming_Parse(t *testing.T) {
	tests := []struct {
		name    string
		ns      string
		channel string
		kind    ChannelKind
		id      string
		key     registry.Key
	}{
		{"root", "", "plugin", ChannelPlugin, "", registry.Key{}},
		{"engine", "", "engine", ChannelEngine, "", registry.Key{Kind: registry.KindEngine}},
		{"room", "", "room#7", ChannelRoom, "7", registry.Key{Kind: registry.KindRoom, ID: "7"}},
		{"spatial facet", "", "spatial_audio#7", ChannelSpatialAudio, "7", registry.Key{Kind: registry.KindRoom, ID: "7"}},
		{"range facet", "", "range_audio#7", ChannelRangeAudio, "7", registry.Key{Kind: registry.KindRoom, ID: "7"}},
		{"id with hash", "", "room#a#b", ChannelRoom, "a#b", registry.Key{Kind: registry.KindRoom, ID: "a#b"}},
		{"namespaced", "rtc.", "rtc.media_player#3", ChannelMediaPlayer, "3", registry.Key{Kind: registry.KindMediaPlayer, ID: "3"}},
		{"ktv manager", "", "ktv_manager", ChannelKTVManager, "", registry.Key{Kind: registry.KindKTVManager}},
		{"mixing facet", "", "audio_mixing_manager", ChannelAudioMixing, "", registry.Key{Kind: registry.KindEngine}},
		{"effect facet", "rtc.", "rtc.video_effect", ChannelVideoEffect, "", registry.Key{Kind: registry.KindEngine}},
		{"sing scoring", "", "sing_scoring_manager", ChannelSingScoring, "", registry.Key{Kind: registry.KindSingScoring}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Naming{Namespace: tt.ns}
			r, err := n.Parse(tt.channel)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.channel, err)
			}
			if r.Kind != tt.kind || r.ID != tt.id {
				t.Errorf("route = %+v", r)
			}
			if !r.Root() && r.Key() != tt.key {
				t.Errorf("Key = %+v, want %+v", r.Key(), tt.key)
			}
			if got := n.Format(r.Kind, r.ID); got != tt.channel {
				t.Errorf("Format = %s", got)
			}
		})
	}
}

func TestNaming_ParseErrors(t *testing.T) {
	n := Naming{Namespace: "rtc."}
	for _, channel := range []string{
		"room#7",
		"rtc.room",
		"rtc.room#",
		"rtc.engine#1",
		"rtc.camera#1",
		"rtc.plugin#x",
		"rtc.video_effect#1",
	} {
		_, err := n.Parse(channel)
		if !stderrors.Is(err, &errors.Error{Kind: errors.KindInvalidChannel}) {
			t.Errorf("Parse(%q) = %v, want invalid_channel", channel, err)
		}
	}
}

func TestNaming_ForKey(t *testing.T) {
	n := Naming{}
	if got := n.ForKey(registry.Key{Kind: registry.KindRoom, ID: "7"}); got != "room#7" {
		t.Errorf("ForKey = %s", got)
	}
	if got := n.ForKey(registry.Key{Kind: registry.KindEngine}); got != "engine" {
		t.Errorf("ForKey = %s", got)
	}
}

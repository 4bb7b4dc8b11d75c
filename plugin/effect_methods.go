package plugin

import (
	"github.com/wippyai/rtc-bridge/bridge"
	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/rtc"
)

type effectMethod = func(v rtc.VideoEffect, a *codec.Reader) (any, error)

// videoEffectTable serves the engine's video effect facet. Face detection
// results are published on the engine channel as onFaceDetectResult.
func videoEffectTable() bridge.Table {
	t := bridge.Table{
		"enableVideoEffect":        effectSimple(rtc.VideoEffect.EnableVideoEffect),
		"disableVideoEffect":       effectSimple(rtc.VideoEffect.DisableVideoEffect),
		"disableVirtualBackground": effectSimple(rtc.VideoEffect.DisableVirtualBackground),
		"disableFaceDetection":     effectSimple(rtc.VideoEffect.DisableFaceDetection),
	}
	for name, fn := range effectMethods() {
		t[name] = effect(fn)
	}
	return t
}

func effect(fn effectMethod) bridge.Method {
	return bridge.Native(func(e rtc.Engine, a *codec.Reader) (any, error) {
		return fn(e.VideoEffect(), a)
	})
}

func effectSimple(fn func(rtc.VideoEffect) error) bridge.Method {
	return effect(func(v rtc.VideoEffect, _ *codec.Reader) (any, error) {
		return nil, fn(v)
	})
}

func effectMethods() map[string]effectMethod {
	return map[string]effectMethod{
		"initCVResource": func(v rtc.VideoEffect, a *codec.Reader) (any, error) {
			license, model := a.String("licenseFile"), a.String("modelPath")
			return run(a, func() error { return v.InitCVResource(license, model) })
		},
		"setEffectNodes": func(v rtc.VideoEffect, a *codec.Reader) (any, error) {
			nodes := a.Strings("effectNodes")
			return run(a, func() error { return v.SetEffectNodes(nodes) })
		},
		"updateEffectNode": func(v rtc.VideoEffect, a *codec.Reader) (any, error) {
			node, key := a.String("effectNode"), a.String("key")
			val := a.Float32("value")
			return run(a, func() error { return v.UpdateEffectNode(node, key, val) })
		},
		"setColorFilter": func(v rtc.VideoEffect, a *codec.Reader) (any, error) {
			res := a.String("resFile")
			return run(a, func() error { return v.SetColorFilter(res) })
		},
		"setColorFilterIntensity": func(v rtc.VideoEffect, a *codec.Reader) (any, error) {
			intensity := a.Float32("intensity")
			return run(a, func() error { return v.SetColorFilterIntensity(intensity) })
		},
		"enableVirtualBackground": func(v rtc.VideoEffect, a *codec.Reader) (any, error) {
			model := a.String("modelPath")
			src := codec.Read[rtc.VirtualBackgroundSource](a, "source")
			return run(a, func() error { return v.EnableVirtualBackground(model, src) })
		},
		"enableFaceDetection": func(v rtc.VideoEffect, a *codec.Reader) (any, error) {
			interval, model := a.Int("interval"), a.String("modelPath")
			return run(a, func() error { return v.EnableFaceDetection(interval, model) })
		},
	}
}

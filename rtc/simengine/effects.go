package simengine

import (
	"sync"

	"github.com/wippyai/rtc-bridge/rtc"
)

// VideoEffects is a simulated rtc.VideoEffect. Effects need InitCVResource
// first; face detection reports one face right away.
type VideoEffects struct {
	engine *Engine

	mu            sync.Mutex
	initialized   bool
	enabled       bool
	nodes         []string
	filter        string
	background    bool
	faceDetection bool
}

var _ rtc.VideoEffect = (*VideoEffects)(nil)

// Nodes returns the effect nodes currently applied.
func (v *VideoEffects) Nodes() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.nodes...)
}

// Enabled reports whether the effect pipeline is on.
func (v *VideoEffects) Enabled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.enabled
}

// update records op and runs fn under the lock. Unless op is
// initCVResource, fn only runs after initialisation.
func (v *VideoEffects) update(op string, fn func() error) error {
	if err := v.engine.record("effect." + op); err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.initialized && op != "initCVResource" {
		return fail(op, CodeInvalidState)
	}
	return fn()
}

func (v *VideoEffects) InitCVResource(licenseFile, modelPath string) error {
	if licenseFile == "" || modelPath == "" {
		return fail("initCVResource", CodeInvalidArgument)
	}
	return v.update("initCVResource", func() error {
		v.initialized = true
		return nil
	})
}

func (v *VideoEffects) EnableVideoEffect() error {
	return v.update("enableVideoEffect", func() error {
		v.enabled = true
		return nil
	})
}

func (v *VideoEffects) DisableVideoEffect() error {
	return v.update("disableVideoEffect", func() error {
		v.enabled = false
		return nil
	})
}

func (v *VideoEffects) SetEffectNodes(nodes []string) error {
	return v.update("setEffectNodes", func() error {
		v.nodes = append([]string(nil), nodes...)
		return nil
	})
}

func (v *VideoEffects) UpdateEffectNode(node, key string, value float32) error {
	if value < 0 || value > 1 {
		return fail("updateEffectNode", CodeInvalidArgument)
	}
	return v.update("updateEffectNode", func() error {
		for _, n := range v.nodes {
			if n == node {
				return nil
			}
		}
		return fail("updateEffectNode", CodeInvalidState)
	})
}

func (v *VideoEffects) SetColorFilter(resFile string) error {
	return v.update("setColorFilter", func() error {
		v.filter = resFile
		return nil
	})
}

func (v *VideoEffects) SetColorFilterIntensity(intensity float32) error {
	if intensity < 0 || intensity > 1 {
		return fail("setColorFilterIntensity", CodeInvalidArgument)
	}
	return v.update("setColorFilterIntensity", func() error {
		if v.filter == "" {
			return fail("setColorFilterIntensity", CodeInvalidState)
		}
		return nil
	})
}

func (v *VideoEffects) EnableVirtualBackground(modelPath string, src rtc.VirtualBackgroundSource) error {
	if src.SourceType == rtc.VirtualBackgroundImage && src.SourcePath == "" {
		return fail("enableVirtualBackground", CodeInvalidArgument)
	}
	return v.update("enableVirtualBackground", func() error {
		v.background = true
		return nil
	})
}

func (v *VideoEffects) DisableVirtualBackground() error {
	return v.update("disableVirtualBackground", func() error {
		v.background = false
		return nil
	})
}

func (v *VideoEffects) EnableFaceDetection(intervalMs int, modelPath string) error {
	if intervalMs <= 0 {
		return fail("enableFaceDetection", CodeInvalidArgument)
	}
	err := v.update("enableFaceDetection", func() error {
		v.faceDetection = true
		return nil
	})
	if err != nil {
		return err
	}
	w, h := v.engine.factory.SnapshotSize[0], v.engine.factory.SnapshotSize[1]
	result := rtc.FaceDetectionResult{
		ImageWidth:  w,
		ImageHeight: h,
		Faces:       []rtc.Rectangle{{X: w / 4, Y: h / 4, Width: w / 2, Height: h / 2}},
		Expressions: []rtc.ExpressionDetectInfo{},
	}
	v.engine.emit(func(h rtc.EngineEventHandler) { h.OnFaceDetectResult(result) })
	return nil
}

func (v *VideoEffects) DisableFaceDetection() error {
	return v.update("disableFaceDetection", func() error {
		v.faceDetection = false
		return nil
	})
}

package motion

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/larchwood/motion/ease"
)

// TimelineConfig is the YAML document shape accepted by LoadTimeline.
type TimelineConfig struct {
	Tweens []TweenConfig `yaml:"tweens"`
}

// TweenConfig declares one tween of a timeline.
//
//	tweens:
//	  - name: rise
//	    target: hero
//	    to: {y: 40, alpha: "+0.5"}
//	    duration: 800
//	    easing: out-bounce
//	  - name: settle
//	    target: hero
//	    to: {y: 64}
//	    duration: 300
//	    after: rise
type TweenConfig struct {
	Name         string         `yaml:"name"`
	Target       string         `yaml:"target"`
	To           map[string]any `yaml:"to"`
	Duration     float64        `yaml:"duration"`
	Delay        float64        `yaml:"delay"`
	Repeat       int            `yaml:"repeat"`
	RepeatDelay  *float64       `yaml:"repeat_delay"`
	ReverseDelay *float64       `yaml:"reverse_delay"`
	Yoyo         bool           `yaml:"yoyo"`
	Easing       string         `yaml:"easing"`
	Path         string         `yaml:"path"`
	After        string         `yaml:"after"`
}

// Timeline is a named set of tweens built from a TimelineConfig, with
// `after` references resolved into chains.
type Timeline struct {
	tweens map[string]*Tween
	roots  []*Tween
}

// Tween returns the named tween, or nil if the config declared none.
func (tl *Timeline) Tween(name string) *Tween {
	return tl.tweens[name]
}

// Start starts every tween that is not chained after another.
// Chained tweens start automatically when their predecessor completes.
func (tl *Timeline) Start(time ...float64) {
	for _, t := range tl.roots {
		t.Start(time...)
	}
}

// Stop stops every root tween, cascading through chains.
func (tl *Timeline) Stop() {
	for _, t := range tl.roots {
		t.Stop()
	}
}

// LoadTimeline reads a YAML timeline and builds its tweens on the given
// scheduler against the named target maps. Configuration is developer
// input, so unlike the interpolation layer this is the one place that
// surfaces errors: unknown targets, easing names, path names, duplicate
// tween names, and dangling `after` references are all rejected.
func LoadTimeline(r io.Reader, targets map[string]map[string]float64, s *Scheduler) (*Timeline, error) {
	var cfg TimelineConfig
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode timeline: %w", err)
	}
	return BuildTimeline(cfg, targets, s)
}

// BuildTimeline is LoadTimeline without the YAML decoding step, for
// configs assembled in code.
func BuildTimeline(cfg TimelineConfig, targets map[string]map[string]float64, s *Scheduler) (*Timeline, error) {
	tl := &Timeline{tweens: make(map[string]*Tween, len(cfg.Tweens))}

	for i, tc := range cfg.Tweens {
		name := tc.Name
		if name == "" {
			return nil, fmt.Errorf("tween %d: missing name", i)
		}
		if _, dup := tl.tweens[name]; dup {
			return nil, fmt.Errorf("tween %q: duplicate name", name)
		}
		target, ok := targets[tc.Target]
		if !ok {
			return nil, fmt.Errorf("tween %q: unknown target %q", name, tc.Target)
		}

		tw := s.Tween(target).To(normalizeProps(tc.To))
		if tc.Duration > 0 {
			tw.Duration(tc.Duration)
		}
		if tc.Delay > 0 {
			tw.Delay(tc.Delay)
		}
		if tc.Repeat != 0 {
			tw.Repeat(tc.Repeat)
		}
		if tc.RepeatDelay != nil {
			tw.RepeatDelay(*tc.RepeatDelay)
		}
		if tc.ReverseDelay != nil {
			tw.ReverseDelay(*tc.ReverseDelay)
		}
		if tc.Yoyo {
			tw.Yoyo(true)
		}
		if tc.Easing != "" {
			fn, ok := EasingByName(tc.Easing)
			if !ok {
				return nil, fmt.Errorf("tween %q: unknown easing %q", name, tc.Easing)
			}
			tw.Easing(fn)
		}
		if tc.Path != "" {
			fn, ok := PathByName(tc.Path)
			if !ok {
				return nil, fmt.Errorf("tween %q: unknown path %q", name, tc.Path)
			}
			tw.Interpolation(fn)
		}

		tl.tweens[name] = tw
	}

	// Resolve chains in a second pass so forward references work.
	chainedInto := make(map[string]bool)
	for _, tc := range cfg.Tweens {
		if tc.After == "" {
			continue
		}
		pred, ok := tl.tweens[tc.After]
		if !ok {
			return nil, fmt.Errorf("tween %q: after refers to unknown tween %q", tc.Name, tc.After)
		}
		if tc.After == tc.Name {
			return nil, fmt.Errorf("tween %q: after refers to itself", tc.Name)
		}
		pred.Chain(tl.tweens[tc.Name])
		chainedInto[tc.Name] = true
	}
	for _, tc := range cfg.Tweens {
		if !chainedInto[tc.Name] {
			tl.roots = append(tl.roots, tl.tweens[tc.Name])
		}
	}
	return tl, nil
}

// normalizeProps converts YAML-decoded end values into the forms Tween.To
// understands: numbers, relative strings, and []float64 keyframes.
func normalizeProps(raw map[string]any) Props {
	props := make(Props, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case []any:
			pts := make([]float64, 0, len(val))
			for _, p := range val {
				if f, ok := toFloat(p); ok {
					pts = append(pts, f)
				}
			}
			props[k] = pts
		default:
			props[k] = v
		}
	}
	return props
}

// easingNames maps timeline config keys to easing curves.
var easingNames = map[string]ease.Func{
	"linear":         ease.Linear,
	"in-quad":        ease.InQuad,
	"out-quad":       ease.OutQuad,
	"in-out-quad":    ease.InOutQuad,
	"in-cubic":       ease.InCubic,
	"out-cubic":      ease.OutCubic,
	"in-out-cubic":   ease.InOutCubic,
	"in-quart":       ease.InQuart,
	"out-quart":      ease.OutQuart,
	"in-out-quart":   ease.InOutQuart,
	"in-quint":       ease.InQuint,
	"out-quint":      ease.OutQuint,
	"in-out-quint":   ease.InOutQuint,
	"in-sine":        ease.InSine,
	"out-sine":       ease.OutSine,
	"in-out-sine":    ease.InOutSine,
	"in-expo":        ease.InExpo,
	"out-expo":       ease.OutExpo,
	"in-out-expo":    ease.InOutExpo,
	"in-circ":        ease.InCirc,
	"out-circ":       ease.OutCirc,
	"in-out-circ":    ease.InOutCirc,
	"in-elastic":     ease.InElastic,
	"out-elastic":    ease.OutElastic,
	"in-out-elastic": ease.InOutElastic,
	"in-back":        ease.InBack,
	"out-back":       ease.OutBack,
	"in-out-back":    ease.InOutBack,
	"in-bounce":      ease.InBounce,
	"out-bounce":     ease.OutBounce,
	"in-out-bounce":  ease.InOutBounce,
}

// EasingByName resolves a timeline easing key such as "out-bounce".
// Lookup is case-insensitive.
func EasingByName(name string) (ease.Func, bool) {
	fn, ok := easingNames[strings.ToLower(name)]
	return fn, ok
}

// PathByName resolves a timeline path key: "linear", "bezier", or
// "catmull-rom".
func PathByName(name string) (PathFunc, bool) {
	switch strings.ToLower(name) {
	case "linear":
		return PathLinear, true
	case "bezier":
		return PathBezier, true
	case "catmull-rom":
		return PathCatmullRom, true
	default:
		return nil, false
	}
}

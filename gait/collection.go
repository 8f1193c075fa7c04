package gait

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MasterYip/OCS2"
)

type collectionFile struct {
	Gaits map[string]templateFile `yaml:"gaits"`
}

type templateFile struct {
	EventTimes   []float64 `yaml:"event_times"`
	ModeSequence []string  `yaml:"mode_sequence"`
}

// LoadCollection reads named gait templates from a YAML file:
//
//	gaits:
//	  trot:
//	    event_times: [0.3, 0.6]
//	    mode_sequence: [LF_RH, RF_LH]
//
// Modes may be given by name or as bare mode numbers. Templates are
// validated on the way in; malformed entries fail the whole load.
func LoadCollection(path string) (map[string]Template, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f collectionFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(f.Gaits) == 0 {
		return nil, fmt.Errorf("parsing %s: no gaits defined", path)
	}

	gaits := make(map[string]Template, len(f.Gaits))
	for name, tf := range f.Gaits {
		tmpl, err := tf.template()
		if err != nil {
			return nil, fmt.Errorf("gait %q: %w", name, err)
		}
		gaits[name] = tmpl
	}
	return gaits, nil
}

func (tf templateFile) template() (Template, error) {
	if len(tf.EventTimes) == 0 {
		return Template{}, fmt.Errorf("empty event times")
	}
	if len(tf.EventTimes) != len(tf.ModeSequence) {
		return Template{}, fmt.Errorf("%d event times but %d modes",
			len(tf.EventTimes), len(tf.ModeSequence))
	}

	prev := 0.0
	for _, te := range tf.EventTimes {
		if te <= prev {
			return Template{}, fmt.Errorf("event times must be positive and strictly increasing, got %v", tf.EventTimes)
		}
		prev = te
	}

	tmpl := Template{
		EventTimes:   append([]float64(nil), tf.EventTimes...),
		ModeSequence: make([]ocs2.Mode, len(tf.ModeSequence)),
	}
	for i, s := range tf.ModeSequence {
		m, err := ParseMode(s)
		if err != nil {
			return Template{}, err
		}
		tmpl.ModeSequence[i] = m
	}
	return tmpl, nil
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/MasterYip/OCS2"
	"github.com/MasterYip/OCS2/gait"
)

var (
	gaitName = flag.String("gait", "trot", "the gait to schedule")
	gaitFile = flag.String("file", "", "optional YAML gait collection (overrides built-ins)")
	duration = flag.Float64("duration", 3.0, "horizon length in seconds")
	dt       = flag.Float64("dt", 0.1, "discretization step in seconds")
	watch    = flag.Bool("watch", false, "keep running and reload the gait file on change")
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "main",
})

func main() {
	flag.Parse()

	gaits := gait.DefaultCollection()
	if *gaitFile != "" {
		var err error
		gaits, err = gait.LoadCollection(*gaitFile)
		if err != nil {
			fmt.Printf("error loading gait file: %s\n", err)
			os.Exit(1)
		}
	}

	tmpl, ok := gaits[*gaitName]
	if !ok {
		fmt.Printf("unknown gait: %s\n", *gaitName)
		os.Exit(1)
	}

	dump(tmpl)

	if *watch && *gaitFile != "" {
		w, err := gait.NewWatcher(*gaitFile)
		if err != nil {
			fmt.Printf("error watching gait file: %s\n", err)
			os.Exit(1)
		}
		defer w.Close()

		for gaits := range w.Subscribe() {
			tmpl, ok := gaits[*gaitName]
			if !ok {
				log.WithField("gait", *gaitName).Warn("gait dropped from collection")
				continue
			}
			dump(tmpl)
		}
	}
}

func dump(tmpl gait.Template) {
	ms := tmpl.Schedule(gait.ModeStance, *duration)
	log.WithFields(logrus.Fields{
		"gait":     *gaitName,
		"period":   tmpl.Period(),
		"duration": *duration,
		"events":   len(ms.EventTimes),
	}).Info("built mode schedule")

	fmt.Println(ms)

	grid := ocs2.TimeDiscretizationWithEvents(0, *duration, *dt, ms.EventTimes, 1e-4)
	for _, t := range grid {
		fmt.Printf("t=%0.3f mode=%d swing=%v\n", t, ms.ModeAtTime(t), gait.SwingPhases(t, ms))
	}
}

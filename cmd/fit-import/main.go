package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/muktihari/fit/decoder"
	"github.com/muktihari/fit/profile/mesgdef"
	"github.com/muktihari/fit/profile/typedef"

	"github.com/fitglue/ftracker/pkg/sensor"
)

// sportCodes maps FIT sports onto tracker activity codes.
var sportCodes = map[typedef.Sport]string{
	typedef.SportRunning:  "RUN",
	typedef.SportWalking:  "WLK",
	typedef.SportSwimming: "SWM",
}

func main() {
	inputPath := flag.String("input", "", "Path to FIT activity file")
	outputPath := flag.String("output", "", "Write packages JSON to this file instead of stdout")
	weight := flag.Float64("weight", 75, "Body weight in kg (FIT sessions do not carry it)")
	height := flag.Float64("height", 175, "Height in cm, used for WLK packages")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Please provide input file with -input")
		os.Exit(1)
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		fmt.Printf("Failed to read file: %v\n", err)
		os.Exit(1)
	}

	fitDec := decoder.New(bytes.NewReader(data))
	fitData, err := fitDec.Decode()
	if err != nil {
		fmt.Printf("Failed to decode FIT file: %v\n", err)
		os.Exit(1)
	}

	var pkgs []sensor.Package
	for _, msg := range fitData.Messages {
		if msg.Num != typedef.MesgNumSession {
			continue
		}
		session := mesgdef.NewSession(&msg)

		code, ok := sportCodes[session.Sport]
		if !ok {
			fmt.Printf("Skipping session: unsupported sport %s\n", session.Sport)
			continue
		}

		hours := float64(session.TotalElapsedTime) / 1000 / 3600
		if hours <= 0 {
			fmt.Printf("Skipping session: no elapsed time (sport %s)\n", session.Sport)
			continue
		}

		switch code {
		case "SWM":
			// total_cycles counts strokes for swims; pool_length is scaled by 100.
			pkgs = append(pkgs, sensor.Package{
				WorkoutType: code,
				Data: []float64{
					float64(session.TotalCycles),
					hours,
					*weight,
					float64(session.PoolLength) / 100,
					float64(session.NumActiveLengths),
				},
			})
		case "WLK":
			// One gait cycle is two steps.
			steps := float64(session.TotalCycles) * 2
			pkgs = append(pkgs, sensor.Package{
				WorkoutType: code,
				Data:        []float64{steps, hours, *weight, *height},
			})
		default:
			steps := float64(session.TotalCycles) * 2
			pkgs = append(pkgs, sensor.Package{
				WorkoutType: code,
				Data:        []float64{steps, hours, *weight},
			})
		}
	}

	if len(pkgs) == 0 {
		fmt.Println("No convertible sessions found in FIT file")
		os.Exit(1)
	}

	out, err := json.MarshalIndent(pkgs, "", "  ")
	if err != nil {
		fmt.Printf("Failed to marshal packages: %v\n", err)
		os.Exit(1)
	}

	if *outputPath != "" {
		if err := os.WriteFile(*outputPath, append(out, '\n'), 0o644); err != nil {
			fmt.Printf("Failed to write %s: %v\n", *outputPath, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d package(s) to %s\n", len(pkgs), *outputPath)
		return
	}
	fmt.Println(string(out))
}

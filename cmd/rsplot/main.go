// Command rsplot computes the shortest Reeds-Shepp path between two poses
// and renders it to a PNG, with forward and reverse spans drawn in
// different colors.
//
// Poses are given as "x,y,theta" with theta in radians:
//
//	rsplot -start 0,0,0 -goal 4,3,1.57 -o path.png
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/GlinZhu/reedsshepp"
)

func main() {
	var (
		startArg = flag.String("start", "0,0,0", "start pose as x,y,theta")
		goalArg  = flag.String("goal", "4,3,1.57", "goal pose as x,y,theta")
		steering = flag.Float64("steering", 0.6, "maximum steering angle in radians")
		front    = flag.Float64("front", 2.0, "distance from front axle to vehicle center")
		step     = flag.Float64("step", 0.05, "sampling step in curvature-normalized units")
		out      = flag.String("o", "rsplot.png", "output PNG file")
	)
	flag.Parse()

	start, err := parsePose(*startArg)
	if err != nil {
		log.Fatalf("bad -start: %v", err)
	}
	goal, err := parsePose(*goalArg)
	if err != nil {
		log.Fatalf("bad -goal: %v", err)
	}

	veh := reedsshepp.Vehicle{MaxSteeringAngle: *steering, FrontToCenter: *front}
	path, err := reedsshepp.ShortestPath(start, goal, veh, reedsshepp.Config{StepSize: *step})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%s length %.3f (%d samples)", path.Word(), path.Total, len(path.Samples))

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s  length %.3f", path.Word(), path.Total)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	forward := color.RGBA{B: 255, A: 255}
	reverse := color.RGBA{R: 255, A: 255}
	labeled := map[bool]bool{}
	for _, span := range gearSpans(path.Samples) {
		pts := make(plotter.XYs, len(span))
		for i, s := range span {
			pts[i] = plotter.XY{X: s.Point.X, Y: s.Point.Y}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			log.Fatal(err)
		}
		line.Width = vg.Points(2)
		fwd := span[0].Forward
		if fwd {
			line.Color = forward
		} else {
			line.Color = reverse
		}
		p.Add(line)
		if !labeled[fwd] {
			labeled[fwd] = true
			if fwd {
				p.Legend.Add("forward", line)
			} else {
				p.Legend.Add("reverse", line)
			}
		}
	}
	p.Legend.Top = true

	if err := p.Save(8*vg.Inch, 8*vg.Inch, *out); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *out)
}

// gearSpans splits the samples into maximal runs of equal gear. The sample
// that starts a new gear is shared with the previous span so the drawn lines
// stay connected.
func gearSpans(samples []reedsshepp.Sample) [][]reedsshepp.Sample {
	var spans [][]reedsshepp.Sample
	begin := 0
	for i := 1; i < len(samples); i++ {
		if samples[i].Forward != samples[begin].Forward {
			spans = append(spans, samples[begin:i+1])
			begin = i
		}
	}
	if begin < len(samples)-1 || len(spans) == 0 && len(samples) > 0 {
		spans = append(spans, samples[begin:])
	}
	return spans
}

func parsePose(s string) (reedsshepp.Pose, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return reedsshepp.Pose{}, fmt.Errorf("want x,y,theta, got %q", s)
	}
	var vals [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return reedsshepp.Pose{}, err
		}
		vals[i] = v
	}
	return reedsshepp.PoseAt(vals[0], vals[1], vals[2]), nil
}

// Copyright 2017 Hajime Hoshi
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/swarnimarun/Symphonia"
)

func run() error {
	fp := "classic.mp3"
	if len(os.Args) > 1 {
		if nfp := os.Args[1]; nfp != "" {
			fp = nfp
		}
	}
	f, err := os.Open(fp)
	if err != nil {
		return err
	}
	defer f.Close()

	d, err := mp3.NewDecoder(f)
	if err != nil {
		return err
	}

	fmt.Printf("Sample rate: %d[Hz]\n", d.SampleRate())
	fmt.Printf("Channels: %d\n", d.Channels())

	var out *mp3.AudioBuffer
	frames := 0
	for {
		out, err = d.DecodeFrame(out)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	if out != nil {
		frames = out.Frames()
	}

	duration := time.Duration(frames) * time.Second / time.Duration(d.SampleRate())
	fmt.Printf("Frames decoded: %d\n", frames)
	fmt.Printf("Duration: %v\n", duration.Round(time.Millisecond))
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

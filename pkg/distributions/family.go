// Copyright 2025 ScyllaDB
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package distributions

type (
	oneShape struct {
		src RandomSource
		r   float64
		nr  int
	}

	twoShapes struct {
		src RandomSource
		r   float64
		k   float64
		nr  int
	}

	Burr2  struct{ oneShape }
	Burr8  struct{ oneShape }
	Burr10 struct{ oneShape }

	Burr3  struct{ twoShapes }
	Burr4  struct{ twoShapes }
	Burr5  struct{ twoShapes }
	Burr6  struct{ twoShapes }
	Burr9  struct{ twoShapes }
	Burr12 struct{ twoShapes }
)

func (s oneShape) Next() (float64, error) {
	return NextBurr1(s.r, s.nr, s.src)
}

func (s twoShapes) Next() (float64, error) {
	return NextBurr2(s.r, s.k, s.nr, s.src)
}

func NewBurr2(r float64, src RandomSource) *Burr2 {
	return &Burr2{oneShape{r: r, nr: 2, src: src}}
}

func NewBurr8(r float64, src RandomSource) *Burr8 {
	return &Burr8{oneShape{r: r, nr: 8, src: src}}
}

func NewBurr10(r float64, src RandomSource) *Burr10 {
	return &Burr10{oneShape{r: r, nr: 10, src: src}}
}

func NewBurr3(r, k float64, src RandomSource) *Burr3 {
	return &Burr3{twoShapes{r: r, k: k, nr: 3, src: src}}
}

func NewBurr4(r, k float64, src RandomSource) *Burr4 {
	return &Burr4{twoShapes{r: r, k: k, nr: 4, src: src}}
}

func NewBurr5(r, k float64, src RandomSource) *Burr5 {
	return &Burr5{twoShapes{r: r, k: k, nr: 5, src: src}}
}

func NewBurr6(r, k float64, src RandomSource) *Burr6 {
	return &Burr6{twoShapes{r: r, k: k, nr: 6, src: src}}
}

func NewBurr9(r, k float64, src RandomSource) *Burr9 {
	return &Burr9{twoShapes{r: r, k: k, nr: 9, src: src}}
}

func NewBurr12(r, k float64, src RandomSource) *Burr12 {
	return &Burr12{twoShapes{r: r, k: k, nr: 12, src: src}}
}

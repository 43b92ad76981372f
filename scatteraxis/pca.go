// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// pcaModel is a scatter.Projection fitted to two variables.
type pcaModel struct {
	mean  []float64
	comps [][]float64
}

func (m *pcaModel) Mean() []float64         { return m.mean }
func (m *pcaModel) Components() [][]float64 { return m.comps }

// fitPCA fits a principal components analysis to the points (xs[i],
// ys[i]). Components are unit vectors in decreasing order of
// variance.
func fitPCA(xs, ys []float64) (*pcaModel, error) {
	n := len(xs)
	if n != len(ys) {
		return nil, errors.New("pca: sample lengths differ")
	}
	if n < 2 {
		return nil, errors.New("pca: need at least 2 samples")
	}
	data := mat.NewDense(n, 2, nil)
	for i := range xs {
		data.Set(i, 0, xs[i])
		data.Set(i, 1, ys[i])
	}

	var pc stat.PC
	if !pc.PrincipalComponents(data, nil) {
		return nil, errors.New("pca: decomposition failed")
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	m := &pcaModel{mean: []float64{stats.Mean(xs), stats.Mean(ys)}}
	_, k := vecs.Dims()
	for j := 0; j < k; j++ {
		m.comps = append(m.comps, []float64{vecs.At(0, j), vecs.At(1, j)})
	}
	return m, nil
}

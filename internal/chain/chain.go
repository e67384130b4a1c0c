// Package chain enumerates simple (acyclic) transmutation+decay chains
// from a starting isotope, up to a depth cap.
package chain

import (
	"strings"

	"github.com/AbelV22/NAA-Web/internal/isotope"
	"github.com/AbelV22/NAA-Web/internal/nucdata"
)

// DefaultDepth is the depth cap used when callers don't specify one.
const DefaultDepth = 6

// Path is one enumerated simple chain s = n0 -> n1 -> ... -> nk.
type Path struct {
	Nodes []isotope.ID // length k+1
	Mu    []float64    // per-node removal rate, length k+1
	K     []float64    // per-edge rate coefficient, length k
	// FirstSigma is the cross section (barns) of the first activation
	// edge in the chain, for reporting; 0 if the chain has no activation
	// edge (pure decay).
	FirstSigma float64
}

// Terminal returns the last node of the path.
func (p Path) Terminal() isotope.ID {
	return p.Nodes[len(p.Nodes)-1]
}

// Descriptor renders a compact "A -> B -> C" path label.
func (p Path) Descriptor() string {
	parts := make([]string, len(p.Nodes))
	for i, n := range p.Nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, " -> ")
}

// Enumerate produces every simple chain starting at s under flux Φ
// (n/cm^2/s) up to maxDepth edges, including the trivial length-zero
// path (s) alone. Enumeration order is deterministic given the data
// store's edge insertion order.
func Enumerate(store *nucdata.Store, s isotope.ID, flux float64, maxDepth int) []Path {
	if maxDepth < 0 {
		maxDepth = 0
	}
	visited := map[isotope.ID]bool{s: true}
	start := Path{
		Nodes: []isotope.ID{s},
		Mu:    []float64{store.MuRate(s, flux)},
	}
	var out []Path
	out = append(out, start)
	extend(store, start, flux, maxDepth, visited, &out)
	return out
}

func extend(store *nucdata.Store, p Path, flux float64, maxDepth int, visited map[isotope.ID]bool, out *[]Path) {
	if len(p.Nodes)-1 >= maxDepth {
		return
	}
	parent := p.Terminal()

	if flux > 0 {
		for _, e := range store.ActivationEdgesFrom(parent) {
			if visited[e.Daughter] {
				continue
			}
			child := appendEdge(p, e.Daughter, e.Sigma*nucdata.BarnToCm2*flux, store.MuRate(e.Daughter, flux))
			if child.FirstSigma == 0 {
				child.FirstSigma = e.Sigma
			}
			visited[e.Daughter] = true
			*out = append(*out, child)
			extend(store, child, flux, maxDepth, visited, out)
			delete(visited, e.Daughter)
		}
	}

	if store.HasLambda(parent) {
		for _, e := range store.DecayEdgesFrom(parent) {
			if visited[e.Daughter] {
				continue
			}
			child := appendEdge(p, e.Daughter, store.Lambda(parent)*e.Beta, store.MuRate(e.Daughter, flux))
			visited[e.Daughter] = true
			*out = append(*out, child)
			extend(store, child, flux, maxDepth, visited, out)
			delete(visited, e.Daughter)
		}
	}
}

func appendEdge(p Path, daughter isotope.ID, k float64, mu float64) Path {
	nodes := make([]isotope.ID, len(p.Nodes)+1)
	copy(nodes, p.Nodes)
	nodes[len(p.Nodes)] = daughter

	mus := make([]float64, len(p.Mu)+1)
	copy(mus, p.Mu)
	mus[len(p.Mu)] = mu

	ks := make([]float64, len(p.K)+1)
	copy(ks, p.K)
	ks[len(p.K)] = k

	return Path{Nodes: nodes, Mu: mus, K: ks, FirstSigma: p.FirstSigma}
}

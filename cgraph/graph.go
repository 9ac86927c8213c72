package cgraph

import (
	"fmt"

	geom "github.com/rmera/gogeom"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"
)

//Atom is a graph node. The ID function can be replaced, by default the
//index of the atom in the molecule is used.
type Atom struct {
	*geom.Atom
	Bonds  []*Bond
	IDFunc func(*Atom) int64
}

func (A *Atom) ID() int64 {
	if A.IDFunc == nil {
		return int64(A.Index)
	}
	return A.IDFunc(A)
}

type Bond struct {
	*geom.Bond
	At1, At2   *Atom
	Weightfunc func(*Bond) float64
}

//Weight returns the weight of the bond, by default, its distance.
func (B *Bond) Weight() float64 {
	if B.Weightfunc == nil {
		return B.Dist
	}
	return B.Weightfunc(B)
}

func (B *Bond) From() graph.Node {
	return B.At1
}

func (B *Bond) To() graph.Node {
	return B.At2
}

//bonds are not directional, so the reversed edge is obtained by just
//switching the atoms in place.
func (B *Bond) ReversedEdge() graph.Edge {
	B.At1, B.At2 = B.At2, B.At1
	return B
}

type Bonds []*Bond

func (B Bonds) Len() int {
	return len(B)
}

func (B Bonds) Contains(index int) bool {
	for _, b := range B {
		if b.Index == index {
			return true
		}
	}
	return false
}

//Atoms implements graph.Nodes
type Atoms struct {
	Atoms []*Atom
	curr  int
}

//Len returns the number of atoms remaining in the iterator.
func (A *Atoms) Len() int {
	return len(A.Atoms) - A.curr
}

func (A *Atoms) Reset() {
	A.curr = 0
}

func (A *Atoms) Next() bool {
	if A.curr >= len(A.Atoms) {
		return false
	}
	A.curr++
	return true
}

//Node returns the atom the iterator advanced to in the last Next call.
func (A *Atoms) Node() graph.Node {
	return A.Atoms[A.curr-1]
}

//Topology implements the gonum graph.Graph and graph.Undirected
//interfaces over a molecule's bond network.
type Topology struct {
	atoms []*Atom
	bonds Bonds
}

func (T *Topology) Node(id int64) graph.Node {
	a := atomID(T.atoms, id)
	if a == nil {
		return nil
	}
	return a
}

func (T *Topology) Nodes() graph.Nodes {
	return &Atoms{Atoms: T.atoms, curr: 0}
}

//From returns the atoms bonded to the atom with the given id.
func (T *Topology) From(id int64) graph.Nodes {
	ret := make([]*Atom, 0)
	for _, b := range T.bonds {
		if b.At1.ID() == id {
			ret = append(ret, b.At2)
		} else if b.At2.ID() == id {
			ret = append(ret, b.At1)
		}
	}
	return &Atoms{Atoms: ret, curr: 0}
}

func (T *Topology) HasEdgeBetween(id1, id2 int64) bool {
	return T.Edge(id1, id2) != nil
}

func (T *Topology) Edge(id1, id2 int64) graph.Edge {
	//the graph is always undirected
	for _, b := range T.bonds {
		if (b.At1.ID() == id1 && b.At2.ID() == id2) || (b.At1.ID() == id2 && b.At2.ID() == id1) {
			return b
		}
	}
	return nil
}

func (T *Topology) EdgeBetween(id1, id2 int64) graph.Edge {
	return T.Edge(id1, id2)
}

func (T *Topology) WeightedEdge(id1, id2 int64) graph.WeightedEdge {
	b := T.Edge(id1, id2)
	if b == nil {
		return nil
	}
	return b.(*Bond)
}

func (T *Topology) Weight(id1, id2 int64) (w float64, ok bool) {
	if id1 == id2 {
		return 0.0, true
	}
	b := T.Edge(id1, id2)
	if b == nil {
		return -1, false
	}
	return b.(*Bond).Weight(), true
}

func atomID(Ats []*Atom, id int64) *Atom {
	for _, v := range Ats {
		if v.ID() == id {
			return v
		}
	}
	return nil
}

//NewTopology builds a graph from the bonds already present in mol
//(use geom.AssignBonds first if the molecule has none). If IDFunc
//or weightfunc are nil, the defaults (the atom's index and the bond's
//distance, respectively) are used.
func NewTopology(mol geom.AtomIndexesFiller, IDFunc func(*Atom) int64, weightfunc func(*Bond) float64) *Topology {
	mol.FillIndexes()
	b := make([]*Bond, 0)
	a := make([]*Atom, 0)
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		a = append(a, &Atom{Atom: at, IDFunc: IDFunc})
	}
	for i := 0; i < mol.Len(); i++ {
		for _, v := range mol.Atom(i).Bonds {
			if !Bonds(b).Contains(v.Index) {
				nb := &Bond{Bond: v, Weightfunc: weightfunc}
				for _, cand := range a {
					if cand.Atom == v.At1 {
						nb.At1 = cand
					} else if cand.Atom == v.At2 {
						nb.At2 = cand
					}
				}
				if nb.At1 == nil || nb.At2 == nil {
					panic(fmt.Sprintf("NewTopology: Bond %d has at least one non-existent atom", v.Index))
				}
				b = append(b, nb)
			}
		}
	}
	for _, v := range b {
		v.At1.Bonds = append(v.At1.Bonds, v)
		v.At2.Bonds = append(v.At2.Bonds, v)
	}
	return &Topology{atoms: a, bonds: Bonds(b)}
}

//Donors returns the atoms directly bonded to the atom with the given id,
//i.e. the donor atoms of the ligands around a metal center.
func (T *Topology) Donors(center int64) []*Atom {
	ret := make([]*Atom, 0)
	it := T.From(center)
	for it.Next() {
		ret = append(ret, it.Node().(*Atom))
	}
	return ret
}

//LigandGroups returns the connected components of the bond network
//after removing the atom with the given id. For a coordination complex
//each component is one ligand of the center.
func (T *Topology) LigandGroups(center int64) [][]*Atom {
	sub := &Topology{
		atoms: make([]*Atom, 0, len(T.atoms)),
		bonds: make(Bonds, 0, len(T.bonds)),
	}
	for _, a := range T.atoms {
		if a.ID() != center {
			sub.atoms = append(sub.atoms, a)
		}
	}
	for _, b := range T.bonds {
		if b.At1.ID() != center && b.At2.ID() != center {
			sub.bonds = append(sub.bonds, b)
		}
	}
	components := topo.ConnectedComponents(sub)
	ret := make([][]*Atom, 0, len(components))
	for _, comp := range components {
		group := make([]*Atom, 0, len(comp))
		for _, n := range comp {
			group = append(group, n.(*Atom))
		}
		ret = append(ret, group)
	}
	return ret
}

package lake

// better reports whether value a improves on value b under dir.
func better(a, b float64, dir Direction) bool {
	if dir == Minimize {
		return a < b
	}
	return a > b
}

// weaklyDominates reports whether a is at least as good as b on every
// objective under the given directions. It is non-strict: identical triples
// weakly dominate each other.
func weaklyDominates(a, b Objectives, dirs Directions) bool {
	av, bv := a.values(), b.values()
	for i := range av {
		if better(bv[i], av[i], dirs[i]) {
			return false
		}
	}
	return true
}

// Dominates reports strict Pareto dominance: a is at least as good as b on
// every objective and strictly better on at least one.
func Dominates(a, b Objectives, dirs Directions) bool {
	if !weaklyDominates(a, b, dirs) {
		return false
	}
	av, bv := a.values(), b.values()
	for i := range av {
		if better(av[i], bv[i], dirs[i]) {
			return true
		}
	}
	return false
}

// PointSet is a sequence of evaluated records with per-objective column
// accessors, the form the rendering stage consumes.
type PointSet []Record

// MaxConcentrations returns the peak-concentration column.
func (ps PointSet) MaxConcentrations() []float64 { return ps.column(ObjMaxConcentration) }

// Utilities returns the discounted-utility column.
func (ps PointSet) Utilities() []float64 { return ps.column(ObjUtility) }

// Reliabilities returns the reliability column.
func (ps PointSet) Reliabilities() []float64 { return ps.column(ObjReliability) }

func (ps PointSet) column(obj int) []float64 {
	col := make([]float64, len(ps))
	for i, r := range ps {
		col[i] = r.Objectives.values()[obj]
	}
	return col
}

// Partition is the derived split of a point set into non-dominated and
// dominated subsets. It is a pure function of its input; it holds no state of
// its own and is recomputed from scratch after every archive growth step.
type Partition struct {
	Dominant  PointSet
	Dominated PointSet
}

// Cull partitions points by net domination count. For each point P,
//
//	doms(P) = |{Q ≠ P : Q ⪰ P}| − |{Q ≠ P : P ⪰ Q}|
//
// under the non-strict predicate, and P is dominated iff doms(P) > 0. Exact
// duplicates weakly dominate each other, contribute net zero, and therefore
// land in the dominant set together. A point that dominates more points than
// dominate it nets negative, which also leaves it non-dominated; only a
// positive net marks a point as dominated.
//
// Every invocation performs the full O(n²) comparison pass over the input.
func Cull(points PointSet, dirs Directions) Partition {
	part := Partition{Dominant: PointSet{}, Dominated: PointSet{}}
	n := len(points)
	net := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if weaklyDominates(points[j].Objectives, points[i].Objectives, dirs) {
				net[i]++
			}
			if weaklyDominates(points[i].Objectives, points[j].Objectives, dirs) {
				net[i]--
			}
		}
	}
	for i, d := range net {
		if d > 0 {
			part.Dominated = append(part.Dominated, points[i])
		} else {
			part.Dominant = append(part.Dominant, points[i])
		}
	}
	return part
}

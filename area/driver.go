package area

import (
	"context"
	"runtime"
	"sync"

	"github.com/pkg/errors"

	"github.com/uxmesh/uxmesh/geometry"
	"github.com/uxmesh/uxmesh/quadrature"
)

// Options configures a mesh-wide area computation.
type Options struct {
	Rule       quadrature.Rule
	Order      int
	CoordsType geometry.CoordsType
	// Workers bounds the number of concurrent face integrations.
	// Zero or negative selects GOMAXPROCS.
	Workers int
}

// AllFaceAreas computes the area of every face of the mesh. x, y and z are
// the node coordinate arrays (z is ignored when dim <= 2 and may be nil),
// faceNodes maps each face to its node ids, possibly right-padded beyond
// nodesPerFace[i] entries with a fill value, which is never read.
//
// Faces are independent, so they are integrated by a pool of workers each
// writing only its own output slot; the output preserves face order. The
// context is checked cooperatively between faces. The first failing face
// cancels the rest and fails the whole batch: there is no partial-result
// mode, a bad face never silently corrupts the array.
func AllFaceAreas(ctx context.Context, x, y, z []float64, faceNodes [][]int,
	nodesPerFace []int, dim int, opts Options) ([]float64, error) {

	nNodes := len(x)
	if len(y) != nNodes {
		return nil, errors.Errorf("coordinate lengths differ: x=%d y=%d", nNodes, len(y))
	}
	if dim > 2 && len(z) != nNodes {
		return nil, errors.Errorf("coordinate lengths differ: x=%d z=%d", nNodes, len(z))
	}
	if len(nodesPerFace) != len(faceNodes) {
		return nil, errors.Errorf("nodesPerFace length %d does not match %d faces",
			len(nodesPerFace), len(faceNodes))
	}
	// Validate the rule and order before any work is spawned, so an invalid
	// request has no side effects.
	if err := quadrature.Validate(opts.Rule, opts.Order); err != nil {
		return nil, err
	}

	nFaces := len(faceNodes)
	out := make([]float64, nFaces)
	if nFaces == 0 {
		return out, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > nFaces {
		workers = nFaces
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	faces := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range faces {
				a, err := faceAreaAt(x, y, z, faceNodes[i], nodesPerFace[i], dim, opts)
				if err != nil {
					fail(errors.Wrapf(err, "face %d", i))
					return
				}
				out[i] = a
			}
		}()
	}

feed:
	for i := 0; i < nFaces; i++ {
		select {
		case faces <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(faces)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// faceAreaAt gathers the coordinate subset of one face and integrates it.
// Only the first count ids are real; trailing fill padding is ignored.
func faceAreaAt(x, y, z []float64, nodeIDs []int, count, dim int, opts Options) (float64, error) {
	if count < 3 {
		return 0, errors.Wrapf(ErrInvalidFaceDegree, "%d nodes", count)
	}
	if count > len(nodeIDs) {
		return 0, errors.Errorf("node count %d exceeds connectivity row length %d",
			count, len(nodeIDs))
	}

	fx := make([]float64, count)
	fy := make([]float64, count)
	fz := make([]float64, count)
	for j := 0; j < count; j++ {
		id := nodeIDs[j]
		if id < 0 || id >= len(x) {
			return 0, errors.Errorf("node id %d out of range [0,%d)", id, len(x))
		}
		fx[j] = x[id]
		fy[j] = y[id]
		if dim > 2 {
			fz[j] = z[id]
		}
	}
	return FaceArea(fx, fy, fz, opts.Rule, opts.Order, opts.CoordsType)
}

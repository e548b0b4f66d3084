package fastpath

import "github.com/risor-io/fastpath/errz"

// Recover turns a panic raised for a broken tree invariant into an error
// stored in *errp. It must be deferred directly. Other panics propagate.
//
//	func print(p *fastpath.Path) (err error) {
//		defer fastpath.Recover(&err)
//		...
//	}
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if ie, ok := r.(*errz.InvariantError); ok {
		*errp = ie
		return
	}
	panic(r)
}

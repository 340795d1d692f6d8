// Package bl defines the compressible boundary-layer similarity model.
//
// The two-point boundary-value problem (momentum + energy similarity
// equations) is written as five coupled first-order ODEs over the
// similarity coordinate eta:
//
//	y1' = y2                    f'   = f'
//	y2' = y3                    f''  = f''
//	y3' = momentum equation     f'''
//	y4' = y5                    T'   = T'
//	y5' = energy equation       T''
//
// [Similarity] exposes the right-hand side one component at a time through
// [System], matching the decoupled per-component integration policy of
// the integrators package. Evaluations are pure; a non-positive scaled
// temperature is a domain violation and fails fast with
// [NonPhysicalStateError].
package bl

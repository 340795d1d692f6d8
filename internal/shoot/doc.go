// Package shoot solves the boundary-layer two-point BVP by shooting.
//
// Each outer iteration integrates the similarity system three times over
// the same fixed grid: once with the current guess for the wall values
// (f''(0), T(0)) and once with each guess perturbed by a small increment.
// The perturbed far-field values give a 2x2 finite-difference Jacobian;
// Cramer's rule yields the Newton correction to the guess pair.
//
// The loop exits when the change in the Euclidean norm of the velocity
// profile between iterations drops below TolProfile, or at the iteration
// cap. The far-field boundary residual is tracked and reported every
// iteration but deliberately never gates the loop.
package shoot

// Package problem builds random spin-glass Ising models on a graph.
//
// A Model has linear biases h_i and quadratic couplings J_ij over string
// variables. Spins take values ±1 and the energy of an assignment s is
//
//	E(s) = offset + Σ h_i s_i + Σ J_ij s_i s_j
//
// SpinGlass places one coupling on every edge and no fields. Couplings lie on
// the precision grid {±k/precision : k = 1..precision}:
//
//   - config.SchemeUniform:  k uniform on 1..precision, random sign.
//   - config.SchemePowerLaw: P(k) ∝ k⁻², random sign.
//
// Relabel moves a model into hardware qubit labels through a mapping.
package problem

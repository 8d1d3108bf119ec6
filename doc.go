// Package qcwire reads, validates, and writes quantum chemistry interchange
// payloads: molecules, basis sets, single-point results and geometry
// optimizations, where every record is either fully valid or rejected with a
// field-level error.
//
// 🚀 What is qcwire?
//
//	A validated data model for the QCSchema interchange surface:
//		• Molecules: element symbols + flat (N, 3) Cartesian geometry
//		• Basis sets: electron shells, ECP potentials, centers, atom maps
//		• Results: driver/model/provenance envelopes, properties, return values
//		• Wavefunctions: protocol-trimmed orbital, density and Fock payloads
//		• Optimizations: step trajectories projected by retention policy
//
// ✨ Why choose qcwire?
//
//   - Strict by construction: decoded records pass the exact validation the
//     programmatic constructors run
//   - Canonical output: encoding the same record twice is byte-identical
//   - Round-trip safe: decoding an encoded record reproduces it field for
//     field, protocols included
//
// Under the hood, everything is organized under these subpackages:
//
//	core/          Driver, Model, Provenance, ComputeError, error taxonomy
//	ndarray/       flat float64 arrays with reshape-or-fail casting
//	molecule/      the molecular system collaborator + periodic table
//	basis/         shells, ECP potentials, centers, sets, function counts
//	protocol/      wavefunction and trajectory retention policies
//	wavefunction/  the optional heavy payload a result may carry
//	result/        single-point outcome records and failed operations
//	optimize/      optimization records with trajectory projection
//	schema/        envelope detection, JSON/YAML decoding, canonical encoding
//	archive/       SQLite-backed record store with an LRU read cache
//	config/        CLI configuration: TOML file + environment overrides
//
// The qcwire command under cmd/qcwire validates, inspects, and archives
// payload files through the same decoders the library exposes.
//
//	go get github.com/katalvlaran/qcwire
package qcwire

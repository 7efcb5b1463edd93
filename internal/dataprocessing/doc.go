// Package dataprocessing implements the battery cycling-test ingestion
// pipeline: metadata normalization, operation-type classification and
// ranking, rectified-impedance derivation, and cleaning.
//
// Data flows one way: raw rows -> normalized records -> per-type ranked
// partitions -> per-record derived metric (impedance only) -> cleaned
// partition -> assembled dataset. No stage mutates another stage's
// output after handoff.
package dataprocessing

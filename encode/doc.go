// Package encode implements the Domain Encoder (spec.md §4.1): flattening
// per-attribute categorical domains into one contiguous integer
// enumeration, deriving the most-general anonymization M and the
// candidate cut-point set Sigma, and formatting generalized buckets back
// into the wire label format ("{v1; v2; …}").
//
// Grounded on original_source/privacy/base.go's _init_dataset/gen_dict
// and original_source/utils.go's format_generalization/is_gen/gen2set.
package encode

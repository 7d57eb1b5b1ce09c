// Package forminator rebuilds the wp_frmt_form_entry_meta rows the
// Forminator plugin writes for one registration form entry, without going
// through the plugin's submission pipeline.
//
// One Entry produces an ordered run of Rows, one per included form field,
// with densely increasing synthetic meta ids; each Row renders to a MySQL
// INSERT statement. Composite field values (name, calculations, the Stripe
// payment record) are serialized with package phpserialize; everything else
// is stored as raw text.
//
// The field order, the conditional-inclusion rules and the exact serialized
// forms mirror what the plugin writes for the registration form this tool
// backfills; see layout in fields.go.
package forminator

// Package catalog is the resource store for the product catalog: the
// filtered product listing with its server-reported pagination, the
// currently viewed product, and the featured-products list.
//
// All data is server-derived and adopted verbatim on success — the store
// never reorders, filters, or repaginates client-side. Failures keep the
// previous data visible and only set the domain's status and error message.
package catalog

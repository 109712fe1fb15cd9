// Package orders is the resource store for the customer's orders: the
// most-recent-first order list and the currently viewed order.
//
// Order creation and cancellation apply the server's returned order to local
// state on confirmation — a created order is prepended to the list, a
// cancelled one replaces its previous version in place. Failures leave the
// list exactly as it was.
package orders

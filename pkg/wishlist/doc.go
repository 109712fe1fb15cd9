// Package wishlist is the resource store for the customer's wishlist. All
// mutations are pessimistic: Add and Remove send the mutation to the
// backend and replace the local snapshot only with the server's confirmed
// full list. There is no speculative client-side insertion or removal — a
// failed mutation leaves the prior snapshot completely unchanged and
// surfaces the error to the caller.
package wishlist

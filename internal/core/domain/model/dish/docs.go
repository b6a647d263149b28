// Package dish provides the menu aggregate. A Dish carries a name, a
// non-negative decimal price, optional description, image and category, and
// an availability flag.
//
// Order items reference dishes but snapshot the price at order time, so
// editing or disabling a dish never rewrites history. Deleting a dish that
// order items still reference is blocked at the persistence layer.
package dish

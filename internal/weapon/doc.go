// Package weapon provides the stock MegaWeapons a villain can fire: a few
// built-in rays, weapons scripted in Lua, and an Arsenal to look them up by
// name.
package weapon

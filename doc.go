// Package visualpathfinder is a grid pathfinding engine with a small service
// around it: edit a board of walls, search it with Dijkstra, and replay the
// search cell by cell.
//
// 🚀 What is inside?
//
//	gridgraph/       the immutable Grid: cells, walls, start & finish, edits, ASCII layouts
//	dijkstra/        uniform-cost search returning visit order and shortest path
//	config/          viper + YAML configuration and board layout files
//	server/          HTTP & websocket API serving one editable board
//	cmd/pathfinder   CLI: one-shot search or -serve
//
// Every grid edit returns a new Grid, so a search never races an edit.
//
// Quick ASCII example:
//
//	S.#..        S*#..
//	..#..   →    o*#o.
//	....F        o***F
//
//	'o' marks a visited cell, '*' the shortest path.
//
//	go run ./cmd/pathfinder -layout board.yaml
package visualpathfinder

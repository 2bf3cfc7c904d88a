package main

const (
	mainHelp = `Commands:
- demo - constructs two numbers, prints them and their difference
- calc - evaluates a single binary operation
`
	demoHelp = `Usage: largenum demo [options]

Options:
  -a                     <string> minuend (default "-400")
  -b                     <string> subtrahend (default "-30")

  -v -verbose                     log every operation
`
	calcHelp = `Usage: largenum calc <a> <op> <b> [options]

Arguments:
  a                               left operand, decimal integer
  op                              one of + - * / % ^
  b                               right operand, decimal integer

Options:
  -parallel                       multiply in several goroutines

  -v -verbose                     log every operation
`
)

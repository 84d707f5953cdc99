/*
Command moonprint displays the assembled moon renderings on the terminal.

Input is the ascii.json file produced by mkascii.  For each record,
moonprint prints a header line with the physical parameters, a line of
statistics about the art, and the art itself.  Libration angles are shown
in sexagesimal notation; the decimal values are right there in the table
for anyone who wants them, and degrees-minutes-seconds is what you would
dial into a telescope mount.

Usage:

   moonprint [options]
   moonprint -v

Options:

   -f <file>   assembled renderings, default src/render/ascii.json

A record with no art is reported and skipped rather than aborting the
display.  A file that is missing or does not parse at all is a terminal
error with a one line diagnostic, not a stack trace.

-------------
Public domain.
*/
package main

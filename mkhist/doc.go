/*
Command mkhist generates the lunar observation history table.

The asciimoon selector needs a long table of Earth-Moon distances and
optical libration angles, one row per sample epoch.  Mkhist computes the
table from a lunar ephemeris rather than ingesting one from an archive;
the quantities involved are fully determined by theory at far better than
the precision the pipeline carries.

Usage:

   mkhist [options]
   mkhist -v

Options:

   -from <date>   first epoch, YYYY-MM-DD, default 1925-01-01
   -to <date>     last epoch, exclusive, default 2025-01-01
   -s <days>      step between epochs, default 1
   -o <file>      output file, default data/moon_history.csv

Output is CSV with header

   date,distance_km,libration_elat,libration_elon,phase_deg,illum

Distance is in km, angles in decimal degrees.  The selector requires only
the distance and libration columns; date, phase angle and illuminated
fraction ride along for anyone eyeballing the table.

Epochs are uniform steps in JD and the date column carries the fractional
day, so sub-daily steps work as expected.

-------------
Public domain.
*/
package main

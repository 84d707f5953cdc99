/*
Command asciimoon selects a small set of representative lunar configurations
from a long table of Earth-Moon observations.

Contents

Version 1.0

  Program overview
  Command line usage
  Companion commands
  File formats
  Configuration file
  Algorithm outline


Program overview

Input is a CSV table of historical lunar observations with, at minimum,
columns for the Earth-Moon distance and the two optical libration angles.
Output is a CSV table of a fixed number of "canonical" parameter
combinations, each a cluster center of the observed feature space.  A
downstream renderer generates one moon image per output row; the companion
commands mkascii and moonprint turn these images into text art and display
it.

The point of the program is reduction.  A century of daily observations is
tens of thousands of rows; rendering imagery for each is pointless because
the Moon presents nearly the same face for most of them.  Thirty-odd well
chosen rows span the full observed range of distance and libration, and the
renderer need only handle those.

Chosen is the operative word.  Historical sampling is temporally biased, so
selecting cluster centers of the raw table alone would concentrate them in
the most heavily sampled region of the orbit.  Asciimoon instead clusters an
augmented feature space:  the real observations plus a synthetic grid of
points spread evenly over the observed ranges.  The grid points bias the
centers toward even coverage of the physical volume.  They are never emitted
themselves; every output row still lies within the observed range of each
feature.

Sample run:

  $ asciimoon data/moon_history.csv
  Reading data/moon_history.csv, 36525 observations.
  Clustering 37525 points, 31 clusters.
  Writing data/cluster_centers.csv

and the first rows of the output,

  index,distance_km,libration_elat,libration_elon
  01,357234.1,-1.422,3.018
  02,359119.6,2.950,-4.185
  03,361847.3,-5.011,0.442

Output rows are sorted by distance and indexed 01, 02, ... in that order.
For a fixed input table, fixed configuration and fixed seed the output is
deterministic:  rerunning the program reproduces the file byte for byte.


Command line usage

  asciimoon [options] [obsfile]   select cluster centers from obsfile
  asciimoon -h                    display help
  asciimoon -v                    display version and copyright

Obsfile defaults to data/moon_history.csv.

Options:

  -c <config-file>
  -o <output-file>    default data/cluster_centers.csv
  -k <clusters>       default 31
  -g <grid>           grid resolution per dimension, default 10
  -seed <seed>        random seed, default 42
  -b <batch>          mini-batch size, default 1000


Companion commands

  mkhist     generates data/moon_history.csv from a lunar ephemeris
  mkascii    joins cluster centers with rendered images into ascii.json
  moonprint  displays ascii.json on the terminal

Asciimoon does not render images.  It expects a rendering step outside this
repository to produce renders/NN_moon.png for each output index NN; mkascii
then converts each image to character art with the external program chafa.


File formats

The observation table is CSV with a header line.  Columns distance_km,
libration_elat and libration_elon are required and must parse as floating
point in every row.  Column order is not significant and extra columns, such
as the date and phase columns written by mkhist, are ignored.

The output table is CSV with header

  index,distance_km,libration_elat,libration_elon

Index is a two digit zero padded row number assigned after sorting by
distance.  Distance is written with exactly one decimal place, the libration
angles with exactly three.  The file is written to a temporary name and
renamed into place, so a failed run never leaves a half-written table.

The file ascii.json produced by mkascii holds a single object with key
"moons", an array of records in output table order.  Each record joins the
numeric fields of one output row with its character art under key "ascii".


Configuration file

The -c option names a configuration file, read line by line.  A # in column
one marks a comment.  Recognized lines are the bare keywords

  repeatable
  random

and key = value settings

  clusters = 31
  grid = 10
  seed = 42
  batch = 1000
  ninit = 3

Keyword repeatable, the default, seeds the clustering random number
generator with the configured seed.  Keyword random seeds it from the clock
instead, which abandons the determinism guarantee and exists only for
sampling the selector's sensitivity to the seed.  Command line options
override configuration file settings.


Algorithm outline

1.  Ranges.  The minimum and maximum of each of the three features are taken
over the observation table.  A zero range on any feature means the table
cannot support clustering and is rejected.

2.  Augmentation.  A grid of g³ synthetic points is generated, g evenly
spaced fractional positions per dimension mapped onto each feature's range.
Grid points interpolate; they never extend beyond observed values.

3.  Normalization.  A per-feature min-max transform is fitted over the
combined real and synthetic points, mapping each feature to [0,1].  The
three features have wildly different scales (hundreds of thousands of
kilometers against a few degrees); without this step distance alone would
decide every cluster.

4.  Clustering.  Mini-batch k-means with exactly k clusters runs on the
normalized points, restarted ninit times from different seedings of the same
configured seed; the restart with the lowest inertia wins.

5.  Inversion.  The winning centers are mapped back to physical units with
the same min-max parameters fitted in step 3, rounded, sorted by distance
and indexed.

-------------
Public domain.
*/
package main

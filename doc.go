/*Package gspmi implements Generalized Sequential Pattern Mining with
  Interval (GSPMI): enumeration of interval sequential patterns over a
  database of time-stamped itemsets.

  A pattern is a sequence of (quantized-interval, element) pairs. The
  engine finds every pattern whose support (number of distinct input
  sequences containing it) meets a threshold and whose inter-pair gaps
  and whole-pattern span fall within caller-specified bounds. Mining
  proceeds by prefix-projection: a projected database is built for each
  candidate prefix, candidates are counted per source sequence, and the
  search recurses into every candidate that still has a chance of
  meeting the support threshold.
*/
package gspmi

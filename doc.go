/*
 * doc.go, part of gogeom.
 *
 * Copyright 2023 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * gogeom is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

/*Package geom generates starting 3D coordinates for small molecules when no
experimental or pre-computed geometry is available, so quantum chemistry
workflows have a reasonable structure to begin from.


	**gogeom capabilities**

    Classifies a molecule as a coordination complex (a central d-block metal
	surrounded by ligand atoms) or an organic molecule, by atomic number.

    Builds idealized polyhedral geometries for coordination numbers 2-8
	(linear, trigonal planar, tetrahedral, trigonal bipyramidal, octahedral,
	pentagonal bipyramidal and cubic), at literature-typical metal-ligand
	bond lengths.

    Distributes any other number of ligands evenly on a sphere with the
	golden-angle (Fibonacci) construction.

    Delegates organic molecules to an external embedding/force-field
	program through the Embedder interface (see the embed subpackage).

    Reads and writes XYZ files.

    Assigns bonds from a distance criterion, so generated geometries can be
	inspected as graphs (see the cgraph subpackage).

The geometries produced for coordination complexes are idealized, symmetric
starting guesses, not energy minima. Refinement is left to whatever program
consumes them.

Many functions here panic instead of returning errors. This is because they
are "fundamental" functions: if something goes wrong in them, the program is
way-most likely wrong and should crash.*/
package geom

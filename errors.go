/*
 * errors.go, part of gogeom.
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

package geom

//Error is the interface for errors that all packages in this library implement.
//The Decorate method allows to add and retrieve info from the error, without
//changing its type or wrapping it around something else. The decorate slice
//should contain a list of the functions in the calling stack, plus, for each
//function, any relevant information, or nothing. If information is to be added
//to an element of the slice, it should be in this format: "FunctionName: Extra info".
//If passed an empty string, Decorate should just return the current value, not
//add the empty string to the slice.
type Error interface {
	Error() string
	Decorate(string) []string
}

//CError is the concrete error type of the geom package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds the dec string to the decoration slice of strings of the error,
//and returns the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate asserts that the error implements geom.Error and decorates it
//with the caller's name before returning it. The decorated slice returned by
//Decorate is wrapped into a fresh CError (Decorate on a value receiver can't
//grow the original), so the trail survives any number of calls. An error from
//outside the library is wrapped into a CError too.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return CError{err.Error(), []string{caller}}
	}
	return CError{err2.Error(), err2.Decorate(caller)}
}

// Package fixtures holds canned Horizons replies shared by tests.
package fixtures

// EarthDaily is a CSV vector table for Earth relative to the solar system
// barycenter, three daily rows starting 2024-01-01 TDB.
const EarthDaily = `API VERSION: 1.2
API SOURCE: NASA/JPL Horizons API

*******************************************************************************
Ephemeris / API_USER Mon Jan  1 00:00:00 2024 Pasadena, USA      / Horizons
*******************************************************************************
Target body name: Earth (399)                     {source: DE441}
Center body name: Solar System Barycenter (0)     {source: DE441}
Center-site name: BODY CENTER
*******************************************************************************
Start time      : A.D. 2024-Jan-01 00:00:00.0000 TDB
Stop  time      : A.D. 2024-Jan-04 00:00:00.0000 TDB
Step-size       : 1440 minutes
*******************************************************************************
Center geodetic : 0.0, 0.0, 0.0                   {E-lon(deg),Lat(deg),Alt(km)}
Center cylindric: 0.0, 0.0, 0.0                   {E-lon(deg),Dxy(km),Dz(km)}
Center radii    : (undefined)
Output units    : KM-S
Calendar mode   : Mixed Julian/Gregorian
Output type     : GEOMETRIC cartesian states
Output format   : 2 (position and velocity)
Reference frame : Ecliptic of J2000.0
*******************************************************************************
            JDTDB,            Calendar Date (TDB),                      X,                      Y,                      Z,                     VX,                     VY,                     VZ,
**************************************************************************************************************************************************************************************************
$$SOE
2460310.500000000, A.D. 2024-Jan-01 00:00:00.0000, -2.529003040047795E+07,  1.327232604165489E+08,  5.022613542810082E+03, -2.981396627834025E+01, -5.154497113001131E+00,  1.041128829651853E-03,
2460311.500000000, A.D. 2024-Jan-02 00:00:00.0000, -2.785958466424488E+07,  1.322627436524770E+08,  5.126046036520600E+03, -2.966150286094290E+01, -5.506998066498470E+00,  1.350573632016432E-03,
2460312.500000000, A.D. 2024-Jan-03 00:00:00.0000, -3.041489011419600E+07,  1.317718008811410E+08,  5.248741434216499E+03, -2.948893891396543E+01, -5.857107800143780E+00,  1.488620431004051E-03,
$$EOE
**************************************************************************************************************************************************************************************************

TIME

  Barycentric Dynamical Time ("TDB" or T_eph) output was requested. This
continuous coordinate time is equivalent to the relativistic proper time
of a clock at rest in a reference frame comoving with the solar system
barycenter but outside the system's gravity well.

JDTDB    Julian Day Number, Barycentric Dynamical Time
  X      X-component of position vector (km)
  Y      Y-component of position vector (km)
  Z      Z-component of position vector (km)
  VX     X-component of velocity vector (km/sec)
  VY     Y-component of velocity vector (km/sec)
  VZ     Z-component of velocity vector (km/sec)

*******************************************************************************
`

// EarthDailyFirstCalendar is the calendar field of EarthDaily's first row.
const EarthDailyFirstCalendar = "A.D. 2024-Jan-01 00:00:00.0000"

// UnknownTarget is the reply for a COMMAND Horizons cannot match.
const UnknownTarget = `API VERSION: 1.2
API SOURCE: NASA/JPL Horizons API

    Unknown target (123456789). Maybe try different id_type?
`

package mysql

const upsertCitySQL = `
INSERT INTO cities (id, pos, name, image)
VALUES (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  pos   = VALUES(pos),
  name  = VALUES(name),
  image = VALUES(image)
`

const upsertHotelSQL = `
INSERT INTO hotels
  (id, pos, name, location, city, region, country, description, short_description,
   image, rating, price_from, amenities, phone, email, address, lat, lng)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  pos               = VALUES(pos),
  name              = VALUES(name),
  location          = VALUES(location),
  city              = VALUES(city),
  region            = VALUES(region),
  country           = VALUES(country),
  description       = VALUES(description),
  short_description = VALUES(short_description),
  image             = VALUES(image),
  rating            = VALUES(rating),
  price_from        = VALUES(price_from),
  amenities         = VALUES(amenities),
  phone             = VALUES(phone),
  email             = VALUES(email),
  address           = VALUES(address),
  lat               = VALUES(lat),
  lng               = VALUES(lng)
`

// Rooms are replaced wholesale inside the hotel's transaction.
const deleteRoomsSQL = `DELETE FROM rooms WHERE hotel_id = ?`

const insertRoomsPrefix = "INSERT INTO rooms\n  (hotel_id, id, pos, name, description, price_per_night, max_guests, size, amenities, image)\nVALUES "

const upsertRestaurantSQL = `
INSERT INTO restaurants (id, pos, name, city, cuisine, description, image, price_range)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  pos         = VALUES(pos),
  name        = VALUES(name),
  city        = VALUES(city),
  cuisine     = VALUES(cuisine),
  description = VALUES(description),
  image       = VALUES(image),
  price_range = VALUES(price_range)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const selectCitiesSQL = `SELECT id, name, image FROM cities ORDER BY pos, id`

const selectHotelsSQL = `
SELECT
  id, name, location, city, region, country, description, short_description,
  image, rating, price_from, amenities, phone, email, address, lat, lng
FROM hotels
ORDER BY pos, id
`

const selectRoomsSQL = `
SELECT hotel_id, id, name, description, price_per_night, max_guests, size, amenities, image
FROM rooms
ORDER BY hotel_id, pos, id
`

const selectRestaurantsSQL = `
SELECT id, name, city, cuisine, description, image, price_range
FROM restaurants
ORDER BY pos, id
`

package feed

// Fixed parts of the customer-reviews document around the review entries.
const (
	feedHeader = `{"feed": {
        "author": {"name":{"label":"iTunes Store"},"uri":{"label":"http://www.apple.com/itunes/"}},
        "entry": [
            {"im:name":{"label":"Instagram"},"rights":{"label":"© 2015 Instagram, LLC."},"im:price":{"label":"Get","attributes":{"amount":"0.00000","currency":"USD"}},"im:image":[{"label":"http://is4.mzstatic.com/image/thumb/Purple128/v4/bb/ab/25/bbab25cd-f94b-3735-9a36-3743db54df87/Prod-1x_U007emarketing-85-220-0-5.png/53x53bb-85.png","attributes":{"height":"53"}},{"label":"http://is1.mzstatic.com/image/thumb/Purple128/v4/bb/ab/25/bbab25cd-f94b-3735-9a36-3743db54df87/Prod-1x_U007emarketing-85-220-0-5.png/75x75bb-85.png","attributes":{"height":"75"}},{"label":"http://is2.mzstatic.com/image/thumb/Purple128/v4/bb/ab/25/bbab25cd-f94b-3735-9a36-3743db54df87/Prod-1x_U007emarketing-85-220-0-5.png/100x100bb-85.png","attributes":{"height":"100"}}],"im:artist":{"label":"Instagram, Inc.","attributes":{"href":"https://itunes.apple.com/us/developer/instagram-inc/id389801255?mt=8&uo=2"}},"title":{"label":"Instagram - Instagram, Inc."},"link":{"attributes":{"rel":"alternate","type":"text/html","href":"https://itunes.apple.com/us/app/instagram/id389801252?mt=8&uo=2"}},"id":{"label":"https://itunes.apple.com/us/app/instagram/id389801252?mt=8&uo=2","attributes":{"im:id":"389801252","im:bundleId":"com.burbn.instagram"}},"im:contentType":{"attributes":{"term":"Application","label":"Application"}},"category":{"attributes":{"im:id":"6008","term":"Photo & Video","scheme":"https://itunes.apple.com/us/genre/ios-photo-video/id6008?mt=8&uo=2","label":"Photo & Video"}},"im:releaseDate":{"label":"2010-10-06T01:12:41-07:00","attributes":{"label":"October 6, 2010"}}}`

	feedFooter = `
        ],
        "updated": {
            "label": "2017-10-31T11:17:05-07:00"
        },
        "rights": {
            "label": "Copyright 2008 Apple Inc."
        },
        "title": {
            "label": "iTunes Store: Customer Reviews"
        },
        "icon": {
            "label": "http://itunes.apple.com/favicon.ico"
        },
        "link": [{"attributes":{"rel":"alternate","type":"text/html","href":"https://itunes.apple.com/WebObjects/MZStore.woa/wa/viewGrouping?cc=us&id=1"}},{"attributes":{"rel":"self","href":"https://itunes.apple.com/us/rss/customerreviews/id=389801252/sortby=mostrecent/json"}},{"attributes":{"rel":"first","href":"https://itunes.apple.com/us/rss/customerreviews/page=1/id=389801252/sortby=mostrecent/xml?urlDesc=/customerreviews/id=389801252/sortby=mostrecent/json"}},{"attributes":{"rel":"last","href":"https://itunes.apple.com/us/rss/customerreviews/page=10/id=389801252/sortby=mostrecent/xml?urlDesc=/customerreviews/id=389801252/sortby=mostrecent/json"}},{"attributes":{"rel":"previous","href":"https://itunes.apple.com/us/rss/customerreviews/page=1/id=389801252/sortby=mostrecent/xml?urlDesc=/customerreviews/id=389801252/sortby=mostrecent/json"}},{"attributes":{"rel":"next","href":"https://itunes.apple.com/us/rss/customerreviews/page=2/id=389801252/sortby=mostrecent/xml?urlDesc=/customerreviews/id=389801252/sortby=mostrecent/json"}}],
        "id": {
            "label": "https://itunes.apple.com/us/rss/customerreviews/id=389801252/sortby=mostrecent/json"
        }
    }
}
`
)
